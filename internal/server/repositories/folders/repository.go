package folders

import (
	"context"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
)

// Repository stores folders. Every method is scoped by the owning user id.
type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Folder, error)
	Get(ctx context.Context, userID, id string) (*models.Folder, error)
	Exists(ctx context.Context, userID, id string) (bool, error)
	Create(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	Update(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	Delete(ctx context.Context, userID, id string) error
}
