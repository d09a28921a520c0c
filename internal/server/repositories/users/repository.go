package users

import (
	"context"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
