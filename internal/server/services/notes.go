package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/notes"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/repomanager"
)

// TagList is the decoded "tags" property of a note body. NotArray is set when
// the body held something other than an array; elements that were not
// strings are kept as "" so they fail id validation.
type TagList struct {
	IDs      []string
	NotArray bool
}

// NoteInput is a decoded note body. Optional fields are nil when the property
// was absent. A FolderID of "" clears the folder.
type NoteInput struct {
	Title    string
	Content  *string
	FolderID *string
	Tags     *TagList
}

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// BuildListFilter scopes a note listing to userID and adds the optional
// search, folder and tag constraints. Malformed folder or tag ids are rejected.
func BuildListFilter(userID, searchTerm, folderID, tagID string) (notes.Filter, error) {
	f := notes.Filter{UserID: userID, SearchTerm: searchTerm}

	if folderID != "" {
		id, ok := common.ParseID(folderID)
		if !ok {
			return notes.Filter{}, common.InvalidID("folderId")
		}
		f.FolderID = id
	}

	if tagID != "" {
		id, ok := common.ParseID(tagID)
		if !ok {
			return notes.Filter{}, common.InvalidID("tagId")
		}
		f.TagID = id
	}

	return f, nil
}

// List returns the user's notes matching the optional filters, most recently
// updated first.
func (s *NoteService) List(ctx context.Context, userID, searchTerm, folderID, tagID string) ([]*models.Note, error) {
	filter, err := BuildListFilter(userID, searchTerm, folderID, tagID)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Notes(s.db).List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return items, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id string) (*models.Note, error) {
	id, ok := common.ParseID(id)
	if !ok {
		return nil, common.InvalidID("id")
	}

	note, err := s.repomanager.Notes(s.db).Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err, "error getting note")
	}
	return note, nil
}

func (s *NoteService) Create(ctx context.Context, userID string, in NoteInput) (*models.Note, error) {
	if in.Title == "" {
		return nil, common.MissingField("title")
	}

	if in.Tags != nil && in.Tags.NotArray {
		return nil, common.InvalidTagsType()
	}

	folderID, tagIDs, err := s.validateReferences(ctx, userID, deref(in.FolderID), tagIDsOf(in.Tags))
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		Title:   in.Title,
		Content: deref(in.Content),
		Tags:    tagIDs,
		UserID:  userID,
	}
	if folderID != "" {
		note.FolderID = &folderID
	}

	created, err := s.repomanager.Notes(s.db).Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return created, nil
}

// Update replaces the title and whichever optional properties are present in
// the input. References are validated before the note is looked up.
func (s *NoteService) Update(ctx context.Context, userID, id string, in NoteInput) (*models.Note, error) {
	if in.Title == "" {
		return nil, common.MissingField("title")
	}

	id, ok := common.ParseID(id)
	if !ok {
		return nil, common.InvalidID("id")
	}

	if in.Tags != nil && in.Tags.NotArray {
		return nil, common.InvalidTagsType()
	}

	folderID, tagIDs, err := s.validateReferences(ctx, userID, deref(in.FolderID), tagIDsOf(in.Tags))
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Notes(s.db)

	note, err := repo.Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err, "error getting note")
	}

	note.Title = in.Title
	if in.Content != nil {
		note.Content = *in.Content
	}
	if in.FolderID != nil {
		note.FolderID = nil
		if folderID != "" {
			note.FolderID = &folderID
		}
	}
	if in.Tags != nil {
		note.Tags = tagIDs
	}

	updated, err := repo.Update(ctx, note)
	if err != nil {
		return nil, mapNotFound(err, "error updating note")
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	id, ok := common.ParseID(id)
	if !ok {
		return common.InvalidID("id")
	}

	if err := s.repomanager.Notes(s.db).Delete(ctx, userID, id); err != nil {
		return mapNotFound(err, "error deleting note")
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func tagIDsOf(t *TagList) []string {
	if t == nil {
		return nil
	}
	return t.IDs
}
