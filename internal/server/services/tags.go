package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/repomanager"
)

type TagService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTagService(db *sql.DB, m repomanager.RepositoryManager) *TagService {
	return &TagService{db: db, repomanager: m}
}

// List returns the user's tags sorted by name.
func (s *TagService) List(ctx context.Context, userID string) ([]*models.Tag, error) {
	items, err := s.repomanager.Tags(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	return items, nil
}

func (s *TagService) Get(ctx context.Context, userID, id string) (*models.Tag, error) {
	id, ok := common.ParseID(id)
	if !ok {
		return nil, common.InvalidID("id")
	}

	tag, err := s.repomanager.Tags(s.db).Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err, "error getting tag")
	}
	return tag, nil
}

func (s *TagService) Create(ctx context.Context, userID, name string) (*models.Tag, error) {
	if name == "" {
		return nil, common.MissingField("name")
	}

	tag, err := s.repomanager.Tags(s.db).Create(ctx, &models.Tag{Name: name, UserID: userID})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.DuplicateName("Tag")
		}
		return nil, fmt.Errorf("error creating tag: %w", err)
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, userID, id, name string) (*models.Tag, error) {
	if name == "" {
		return nil, common.MissingField("name")
	}

	id, ok := common.ParseID(id)
	if !ok {
		return nil, common.InvalidID("id")
	}

	tag, err := s.repomanager.Tags(s.db).Update(ctx, &models.Tag{ID: id, Name: name, UserID: userID})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.DuplicateName("Tag")
		}
		return nil, mapNotFound(err, "error updating tag")
	}
	return tag, nil
}

// Delete removes the tag and then, as a separate statement, pulls its id out
// of the tag set of every one of the owner's notes.
func (s *TagService) Delete(ctx context.Context, userID, id string) error {
	id, ok := common.ParseID(id)
	if !ok {
		return common.InvalidID("id")
	}

	if err := s.repomanager.Tags(s.db).Delete(ctx, userID, id); err != nil {
		return mapNotFound(err, "error deleting tag")
	}

	if _, err := s.repomanager.Notes(s.db).PullTag(ctx, userID, id); err != nil {
		return fmt.Errorf("error removing tag from notes: %w", err)
	}

	return nil
}
