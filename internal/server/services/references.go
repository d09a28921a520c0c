package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
)

// ValidateFolderReference checks that folderID is empty or names a folder
// owned by userID.
func (s *NoteService) ValidateFolderReference(ctx context.Context, userID, folderID string) error {
	id, err := parseFolderReference(folderID)
	if err != nil {
		return err
	}
	return s.checkFolderOwned(ctx, userID, id)
}

// ValidateTagReferences checks that every id in tagIDs names a tag owned by
// userID. Duplicate ids fail because the store counts each tag once.
func (s *NoteService) ValidateTagReferences(ctx context.Context, userID string, tagIDs []string) error {
	ids, err := parseTagReferences(tagIDs)
	if err != nil {
		return err
	}
	return s.checkTagsOwned(ctx, userID, ids)
}

// validateReferences runs both format checks first and then both ownership
// lookups concurrently. Both lookups run to completion; if both fail the
// folder error is returned. The canonical ids are returned for storage.
func (s *NoteService) validateReferences(ctx context.Context, userID, folderID string, tagIDs []string) (string, []string, error) {
	folder, err := parseFolderReference(folderID)
	if err != nil {
		return "", nil, err
	}

	tags, err := parseTagReferences(tagIDs)
	if err != nil {
		return "", nil, err
	}

	var (
		wg        sync.WaitGroup
		folderErr error
		tagsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		folderErr = s.checkFolderOwned(ctx, userID, folder)
	}()
	go func() {
		defer wg.Done()
		tagsErr = s.checkTagsOwned(ctx, userID, tags)
	}()
	wg.Wait()

	if folderErr != nil {
		return "", nil, folderErr
	}
	if tagsErr != nil {
		return "", nil, tagsErr
	}

	return folder, tags, nil
}

func parseFolderReference(folderID string) (string, error) {
	if folderID == "" {
		return "", nil
	}
	id, ok := common.ParseID(folderID)
	if !ok {
		return "", common.InvalidFolderReference()
	}
	return id, nil
}

func parseTagReferences(tagIDs []string) ([]string, error) {
	ids := make([]string, 0, len(tagIDs))
	for _, raw := range tagIDs {
		id, ok := common.ParseID(raw)
		if !ok {
			return nil, common.InvalidTagReference()
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *NoteService) checkFolderOwned(ctx context.Context, userID, folderID string) error {
	if folderID == "" {
		return nil
	}

	ok, err := s.repomanager.Folders(s.db).Exists(ctx, userID, folderID)
	if err != nil {
		return fmt.Errorf("error checking folder: %w", err)
	}
	if !ok {
		return common.UnauthorizedFolderReference()
	}
	return nil
}

func (s *NoteService) checkTagsOwned(ctx context.Context, userID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	n, err := s.repomanager.Tags(s.db).CountOwned(ctx, userID, tagIDs)
	if err != nil {
		return fmt.Errorf("error checking tags: %w", err)
	}
	if n != len(tagIDs) {
		return common.UnauthorizedTagReference()
	}
	return nil
}
