// Package notes provides the PostgreSQL-backed note repository.
package notes

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

const noteColumns = "id, title, content, folder_id, tags, user_id, created_at, updated_at"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*models.Note, error) {
	n := &models.Note{}
	var folderID sql.NullString
	if err := s.Scan(&n.ID, &n.Title, &n.Content, &folderID, pq.Array(&n.Tags), &n.UserID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if folderID.Valid {
		n.FolderID = &folderID.String
	}
	return n, nil
}

// List returns the notes matching filter, most recently updated first.
func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*models.Note, error) {
	where, args := filter.where()
	query := "SELECT " + noteColumns + " FROM notes WHERE " + where + " ORDER BY updated_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Note, error) {
	query := "SELECT " + noteColumns + " FROM notes WHERE id = $1 AND user_id = $2"

	n, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`INSERT INTO notes (title, content, folder_id, tags, user_id)
		 VALUES ($1, $2, $3, $4::uuid[], $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.FolderID, pq.Array(tagsOrEmpty(note.Tags)), note.UserID).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// Update overwrites title, content, folder and tags of the user's note.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`UPDATE notes
		 SET title = $1, content = $2, folder_id = $3, tags = $4::uuid[], updated_at = now()
		 WHERE id = $5 AND user_id = $6
		 RETURNING ` + noteColumns

	n, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.FolderID, pq.Array(tagsOrEmpty(note.Tags)), note.ID, note.UserID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query :=
		`DELETE FROM notes
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

func (r *PostgresRepository) UnsetFolder(ctx context.Context, userID, folderID string) (int64, error) {
	query :=
		`UPDATE notes SET folder_id = NULL, updated_at = now()
		 WHERE user_id = $1 AND folder_id = $2
		 `

	return r.execCount(ctx, query, userID, folderID)
}

func (r *PostgresRepository) PullTag(ctx context.Context, userID, tagID string) (int64, error) {
	query :=
		`UPDATE notes SET tags = array_remove(tags, $2::uuid), updated_at = now()
		 WHERE user_id = $1 AND $2::uuid = ANY(tags)
		 `

	return r.execCount(ctx, query, userID, tagID)
}

func (r *PostgresRepository) execCount(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
