package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/objectstore"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/notes"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/repomanager"
)

const exportLinkValidity = 15 * time.Minute

// Snapshot is the document written to object storage by an export.
type Snapshot struct {
	ExportedAt time.Time        `json:"exportedAt"`
	UserID     string           `json:"userId"`
	Folders    []*models.Folder `json:"folders"`
	Tags       []*models.Tag    `json:"tags"`
	Notes      []*models.Note   `json:"notes"`
}

// ExportResult tells the caller where the snapshot went. Count is the number
// of notes it contains.
type ExportResult struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       objectstore.Store
	now         func() time.Time
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, store objectstore.Store) *ExportService {
	return &ExportService{db: db, repomanager: m, store: store, now: time.Now}
}

func exportKey(userID string, d time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%02d/%02d/%v.json", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

// Export uploads a JSON snapshot of the user's folders, tags and notes and
// returns a presigned download link.
func (s *ExportService) Export(ctx context.Context, userID string) (*ExportResult, error) {
	folders, err := s.repomanager.Folders(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing folders: %w", err)
	}

	tags, err := s.repomanager.Tags(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}

	items, err := s.repomanager.Notes(s.db).List(ctx, notes.Filter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	now := s.now().UTC()

	body, err := json.Marshal(Snapshot{
		ExportedAt: now,
		UserID:     userID,
		Folders:    folders,
		Tags:       tags,
		Notes:      items,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}

	key := exportKey(userID, now)

	if err := s.store.Put(ctx, key, body, "application/json"); err != nil {
		return nil, fmt.Errorf("error uploading snapshot: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, exportLinkValidity)
	if err != nil {
		return nil, fmt.Errorf("error presigning snapshot: %w", err)
	}

	return &ExportResult{Key: key, URL: url, Count: len(items)}, nil
}
