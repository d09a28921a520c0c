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

type FolderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFolderService(db *sql.DB, m repomanager.RepositoryManager) *FolderService {
	return &FolderService{db: db, repomanager: m}
}

// List returns the user's folders sorted by name.
func (s *FolderService) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	items, err := s.repomanager.Folders(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing folders: %w", err)
	}
	return items, nil
}

func (s *FolderService) Get(ctx context.Context, userID, id string) (*models.Folder, error) {
	id, ok := common.ParseID(id)
	if !ok {
		return nil, common.InvalidID("id")
	}

	folder, err := s.repomanager.Folders(s.db).Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err, "error getting folder")
	}
	return folder, nil
}

func (s *FolderService) Create(ctx context.Context, userID, name string) (*models.Folder, error) {
	if name == "" {
		return nil, common.MissingField("name")
	}

	folder, err := s.repomanager.Folders(s.db).Create(ctx, &models.Folder{Name: name, UserID: userID})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.DuplicateName("Folder")
		}
		return nil, fmt.Errorf("error creating folder: %w", err)
	}
	return folder, nil
}

func (s *FolderService) Update(ctx context.Context, userID, id, name string) (*models.Folder, error) {
	if name == "" {
		return nil, common.MissingField("name")
	}

	id, ok := common.ParseID(id)
	if !ok {
		return nil, common.InvalidID("id")
	}

	folder, err := s.repomanager.Folders(s.db).Update(ctx, &models.Folder{ID: id, Name: name, UserID: userID})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.DuplicateName("Folder")
		}
		return nil, mapNotFound(err, "error updating folder")
	}
	return folder, nil
}

// Delete removes the folder and then, as a separate statement, clears the
// folder reference on the owner's notes. A failure between the two steps
// leaves notes pointing at a deleted folder.
func (s *FolderService) Delete(ctx context.Context, userID, id string) error {
	id, ok := common.ParseID(id)
	if !ok {
		return common.InvalidID("id")
	}

	if err := s.repomanager.Folders(s.db).Delete(ctx, userID, id); err != nil {
		return mapNotFound(err, "error deleting folder")
	}

	if _, err := s.repomanager.Notes(s.db).UnsetFolder(ctx, userID, id); err != nil {
		return fmt.Errorf("error unsetting folder on notes: %w", err)
	}

	return nil
}

// mapNotFound turns a repository miss into the 404 domain error and wraps
// everything else.
func mapNotFound(err error, msg string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.NotFound()
	}
	return fmt.Errorf("%s: %w", msg, err)
}
