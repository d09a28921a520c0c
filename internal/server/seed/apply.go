package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/dbx"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

// Counts reports how many rows of each kind Apply inserted.
type Counts struct {
	Users   int
	Folders int
	Tags    int
	Notes   int
}

type Seeder struct {
	db         *sql.DB
	logger     logging.Logger
	bcryptCost int
}

func NewSeeder(db *sql.DB, logger logging.Logger) *Seeder {
	return &Seeder{db: db, logger: logger.With("module", "seed"), bcryptCost: bcrypt.DefaultCost}
}

// Apply empties all tables and inserts ds in a single transaction. Passwords
// are hashed before the transaction starts.
func (s *Seeder) Apply(ctx context.Context, ds *Dataset) (Counts, error) {
	digests := make([]string, len(ds.Users))
	for i, u := range ds.Users {
		h, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.bcryptCost)
		if err != nil {
			return Counts{}, fmt.Errorf("hash password of %q: %w", u.Username, err)
		}
		digests[i] = string(h)
	}

	var c Counts
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `TRUNCATE notes, tags, folders, users`); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}

		for i, u := range ds.Users {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)`,
				u.ID, u.Username, digests[i], u.Fullname)
			if err != nil {
				return fmt.Errorf("insert user %s: %w", u.ID, err)
			}
			c.Users++
		}

		for _, f := range ds.Folders {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO folders (id, name, user_id) VALUES ($1, $2, $3)`,
				f.ID, f.Name, f.UserID)
			if err != nil {
				return fmt.Errorf("insert folder %s: %w", f.ID, err)
			}
			c.Folders++
		}

		for _, t := range ds.Tags {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tags (id, name, user_id) VALUES ($1, $2, $3)`,
				t.ID, t.Name, t.UserID)
			if err != nil {
				return fmt.Errorf("insert tag %s: %w", t.ID, err)
			}
			c.Tags++
		}

		for _, n := range ds.Notes {
			var folderID any
			if n.FolderID != "" {
				folderID = n.FolderID
			}
			tags := n.Tags
			if tags == nil {
				tags = []string{}
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO notes (id, title, content, folder_id, tags, user_id) VALUES ($1, $2, $3, $4, $5::uuid[], $6)`,
				n.ID, n.Title, n.Content, folderID, pq.Array(tags), n.UserID)
			if err != nil {
				return fmt.Errorf("insert note %s: %w", n.ID, err)
			}
			c.Notes++
		}

		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	s.logger.Info(ctx, "database seeded",
		"users", c.Users, "folders", c.Folders, "tags", c.Tags, "notes", c.Notes)
	return c, nil
}
