// Package tags provides the PostgreSQL-backed tag repository.
package tags

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
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

// List returns the user's tags sorted by name.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Tag, error) {
	query :=
		`SELECT id, name, user_id, created_at, updated_at FROM tags
		 WHERE user_id = $1
		 ORDER BY name ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Tag, 0)
	for rows.Next() {
		f := &models.Tag{}
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

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Tag, error) {
	query :=
		`SELECT id, name, user_id, created_at, updated_at FROM tags
		 WHERE id = $1 AND user_id = $2
		 `

	f := &models.Tag{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&f.ID, &f.Name, &f.UserID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

// CountOwned returns how many of ids are tags owned by userID. Duplicate ids
// are counted once.
func (r *PostgresRepository) CountOwned(ctx context.Context, userID string, ids []string) (int, error) {
	query :=
		`SELECT count(*) FROM tags
		 WHERE user_id = $1 AND id = ANY($2::uuid[])
		 `

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, pq.Array(ids)).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

// Create inserts the tag. A name already used by the same user yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	query :=
		`INSERT INTO tags (name, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, tag.Name, tag.UserID).
		Scan(&tag.ID, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tag, nil
}

// Update renames the tag if it belongs to tag.UserID.
func (r *PostgresRepository) Update(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	query :=
		`UPDATE tags SET name = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, name, user_id, created_at, updated_at
		 `

	f := &models.Tag{}
	err := r.db.QueryRowContext(ctx, query, tag.Name, tag.ID, tag.UserID).
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

// Delete removes the tag. Notes referencing it are left untouched here.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query :=
		`DELETE FROM tags
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
