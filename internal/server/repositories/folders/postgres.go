// Package folders provides the PostgreSQL-backed folder repository.
package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/dbx"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the user's folders sorted by name.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	query :=
		`SELECT id, name, user_id, created_at, updated_at FROM folders
		 WHERE user_id = $1
		 ORDER BY name ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Folder, 0)
	for rows.Next() {
		f := &models.Folder{}
		if err := rows.Scan(&f.ID, &f.Name, &f.UserID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Folder, error) {
	query :=
		`SELECT id, name, user_id, created_at, updated_at FROM folders
		 WHERE id = $1 AND user_id = $2
		 `

	f := &models.Folder{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&f.ID, &f.Name, &f.UserID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

// Exists reports whether the folder exists and belongs to userID.
func (r *PostgresRepository) Exists(ctx context.Context, userID, id string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM folders WHERE id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

// Create inserts the folder. A name already used by the same user yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query :=
		`INSERT INTO folders (name, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, folder.Name, folder.UserID).
		Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

// Update renames the folder if it belongs to folder.UserID.
func (r *PostgresRepository) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query :=
		`UPDATE folders SET name = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, name, user_id, created_at, updated_at
		 `

	f := &models.Folder{}
	err := r.db.QueryRowContext(ctx, query, folder.Name, folder.ID, folder.UserID).
		Scan(&f.ID, &f.Name, &f.UserID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

// Delete removes the folder. Notes referencing it are left untouched here.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query :=
		`DELETE FROM folders
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
