package notes

import (
	"context"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
)

// Repository stores notes. Every method is scoped by the owning user id.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*models.Note, error)
	Get(ctx context.Context, userID, id string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, userID, id string) error

	// UnsetFolder clears folder_id on the user's notes in that folder.
	UnsetFolder(ctx context.Context, userID, folderID string) (int64, error)
	// PullTag removes tagID from the tag set of the user's notes.
	PullTag(ctx context.Context, userID, tagID string) (int64, error)
}
