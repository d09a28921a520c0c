package models

import (
	"encoding/json"
	"time"
)

// Note is owned by exactly one user. FolderID and Tags are references to that
// user's folders and tags; they are cleared, not cascaded, when the folder or
// tag is deleted.
type Note struct {
	ID        string
	Title     string
	Content   string
	FolderID  *string
	Tags      []string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type noteJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FolderID  *string   `json:"folderId,omitempty"`
	Tags      []string  `json:"tags"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MarshalJSON always renders tags as an array, never null.
func (n Note) MarshalJSON() ([]byte, error) {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(noteJSON{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		FolderID:  n.FolderID,
		Tags:      tags,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	})
}

func (n *Note) UnmarshalJSON(b []byte) error {
	var v noteJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Note(v)
	return nil
}
