package repomanager

import (
	"context"
	"database/sql"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/dbx"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/folders"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/notes"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/tags"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Folders(db dbx.DBTX) folders.Repository
	Tags(db dbx.DBTX) tags.Repository
	Notes(db dbx.DBTX) notes.Repository
}
