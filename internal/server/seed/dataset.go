// Package seed loads a YAML dataset of users, folders, tags and notes and
// replaces the contents of the database with it.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultData []byte

type User struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Fullname string `yaml:"fullname"`
}

type Folder struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	UserID string `yaml:"userId"`
}

type Tag struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	UserID string `yaml:"userId"`
}

type Note struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	FolderID string   `yaml:"folderId"`
	Tags     []string `yaml:"tags"`
	UserID   string   `yaml:"userId"`
}

// Dataset is the full content written by Apply. Ids are explicit so that
// notes can reference folders and tags across reloads.
type Dataset struct {
	Users   []User   `yaml:"users"`
	Folders []Folder `yaml:"folders"`
	Tags    []Tag    `yaml:"tags"`
	Notes   []Note   `yaml:"notes"`
}

var ErrInvalidDataset = errors.New("invalid dataset")

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(bytes.NewReader(defaultData))
}

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a dataset. Unknown keys are rejected.
func Parse(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	ds := &Dataset{}
	if err := dec.Decode(ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDataset, fmt.Sprintf(format, args...))
}

// Validate checks ids and that every folder, tag and note reference points to
// an entity owned by the same user. Ids are normalized in place.
func (ds *Dataset) Validate() error {
	users := make(map[string]struct{}, len(ds.Users))
	usernames := make(map[string]struct{}, len(ds.Users))
	for i := range ds.Users {
		u := &ds.Users[i]
		id, ok := common.ParseID(u.ID)
		if !ok {
			return invalid("user %q: bad id %q", u.Username, u.ID)
		}
		u.ID = id
		if u.Username == "" || u.Password == "" {
			return invalid("user %s: username and password are required", id)
		}
		if _, dup := usernames[u.Username]; dup {
			return invalid("duplicate username %q", u.Username)
		}
		usernames[u.Username] = struct{}{}
		users[id] = struct{}{}
	}

	owner := func(kind, id, userID string) (string, error) {
		uid, ok := common.ParseID(userID)
		if !ok {
			return "", invalid("%s %s: bad userId %q", kind, id, userID)
		}
		if _, ok := users[uid]; !ok {
			return "", invalid("%s %s: unknown user %s", kind, id, uid)
		}
		return uid, nil
	}

	folders := make(map[string]string, len(ds.Folders))
	for i := range ds.Folders {
		f := &ds.Folders[i]
		id, ok := common.ParseID(f.ID)
		if !ok {
			return invalid("folder %q: bad id %q", f.Name, f.ID)
		}
		uid, err := owner("folder", id, f.UserID)
		if err != nil {
			return err
		}
		if f.Name == "" {
			return invalid("folder %s: name is required", id)
		}
		f.ID, f.UserID = id, uid
		folders[id] = uid
	}

	tags := make(map[string]string, len(ds.Tags))
	for i := range ds.Tags {
		t := &ds.Tags[i]
		id, ok := common.ParseID(t.ID)
		if !ok {
			return invalid("tag %q: bad id %q", t.Name, t.ID)
		}
		uid, err := owner("tag", id, t.UserID)
		if err != nil {
			return err
		}
		if t.Name == "" {
			return invalid("tag %s: name is required", id)
		}
		t.ID, t.UserID = id, uid
		tags[id] = uid
	}

	for i := range ds.Notes {
		n := &ds.Notes[i]
		id, ok := common.ParseID(n.ID)
		if !ok {
			return invalid("note %q: bad id %q", n.Title, n.ID)
		}
		uid, err := owner("note", id, n.UserID)
		if err != nil {
			return err
		}
		if n.Title == "" {
			return invalid("note %s: title is required", id)
		}
		n.ID, n.UserID = id, uid

		if n.FolderID != "" {
			fid, ok := common.ParseID(n.FolderID)
			if !ok || folders[fid] != uid {
				return invalid("note %s: folder %q is not owned by %s", id, n.FolderID, uid)
			}
			n.FolderID = fid
		}
		for j, tagID := range n.Tags {
			tid, ok := common.ParseID(tagID)
			if !ok || tags[tid] != uid {
				return invalid("note %s: tag %q is not owned by %s", id, tagID, uid)
			}
			n.Tags[j] = tid
		}
	}

	return nil
}
