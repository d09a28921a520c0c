package tags

import (
	"context"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
)

// Repository stores tags. Every method is scoped by the owning user id.
type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Tag, error)
	Get(ctx context.Context, userID, id string) (*models.Tag, error)
	CountOwned(ctx context.Context, userID string, ids []string) (int, error)
	Create(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	Delete(ctx context.Context, userID, id string) error
}
