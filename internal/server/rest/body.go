package rest

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/services"
)

// body is a request object decoded one level deep, so handlers can tell an
// absent property from a null one or from one of the wrong type.
type body map[string]json.RawMessage

// readBody decodes a JSON object. An empty body decodes to an empty object.
func readBody(c *gin.Context) (body, error) {
	b := body{}
	if c.Request.Body == nil {
		return b, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return b, nil
	}

	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, common.BadRequest()
	}
	if b == nil {
		b = body{}
	}
	return b, nil
}

func (b body) has(key string) bool {
	_, ok := b[key]
	return ok
}

func (b body) isNull(key string) bool {
	return bytes.Equal(bytes.TrimSpace(b[key]), []byte("null"))
}

// str returns the property as a string; ok is false when it is absent, null
// or not a JSON string.
func (b body) str(key string) (string, bool) {
	raw, present := b[key]
	if !present || b.isNull(key) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// noteInput maps a note body onto the service input. A null or "" folderId
// clears the folder; a folderId of another type is passed on verbatim so it
// fails id validation. Non-string tag elements become "".
func (b body) noteInput() services.NoteInput {
	in := services.NoteInput{}
	in.Title, _ = b.str("title")

	switch {
	case !b.has("content"):
	case b.isNull("content"):
		empty := ""
		in.Content = &empty
	default:
		if s, ok := b.str("content"); ok {
			in.Content = &s
		}
	}

	switch {
	case !b.has("folderId"):
	case b.isNull("folderId"):
		empty := ""
		in.FolderID = &empty
	default:
		s, ok := b.str("folderId")
		if !ok {
			s = string(b["folderId"])
		}
		in.FolderID = &s
	}

	if b.has("tags") && !b.isNull("tags") {
		in.Tags = decodeTags(b["tags"])
	}

	return in
}

func decodeTags(raw json.RawMessage) *services.TagList {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return &services.TagList{NotArray: true}
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			s = ""
		}
		ids = append(ids, s)
	}
	return &services.TagList{IDs: ids}
}
