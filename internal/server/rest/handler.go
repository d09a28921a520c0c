// Package rest is the JSON HTTP surface of the Noteful API.
package rest

import (
	"context"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/logging"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/auth"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/services"
)

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	IssueToken(user *models.User) (string, error)
	RefreshToken(p *auth.Principal) (string, error)
	ParseToken(token string) (*auth.Principal, error)
}

type FolderService interface {
	List(ctx context.Context, userID string) ([]*models.Folder, error)
	Get(ctx context.Context, userID, id string) (*models.Folder, error)
	Create(ctx context.Context, userID, name string) (*models.Folder, error)
	Update(ctx context.Context, userID, id, name string) (*models.Folder, error)
	Delete(ctx context.Context, userID, id string) error
}

type TagService interface {
	List(ctx context.Context, userID string) ([]*models.Tag, error)
	Get(ctx context.Context, userID, id string) (*models.Tag, error)
	Create(ctx context.Context, userID, name string) (*models.Tag, error)
	Update(ctx context.Context, userID, id, name string) (*models.Tag, error)
	Delete(ctx context.Context, userID, id string) error
}

type NoteService interface {
	List(ctx context.Context, userID, searchTerm, folderID, tagID string) ([]*models.Note, error)
	Get(ctx context.Context, userID, id string) (*models.Note, error)
	Create(ctx context.Context, userID string, in services.NoteInput) (*models.Note, error)
	Update(ctx context.Context, userID, id string, in services.NoteInput) (*models.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type ExportService interface {
	Export(ctx context.Context, userID string) (*services.ExportResult, error)
}

// Pinger backs the /healthz probe. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds the dependencies of every route.
type Handler struct {
	Users   UserService
	Folders FolderService
	Tags    TagService
	Notes   NoteService
	Exports ExportService
	DB      Pinger
	Logger  logging.Logger
}
