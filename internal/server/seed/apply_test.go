package seed

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

// digestOf matches a bcrypt digest of password.
type digestOf string

func (d digestOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(d)) == nil
}

func newSeederWithMock(t *testing.T) (*Seeder, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSeeder(db, logging.Discard())
	s.bcryptCost = bcrypt.MinCost
	return s, mock
}

func smallDataset() *Dataset {
	return &Dataset{
		Users:   []User{{ID: bob, Username: "bob", Password: "secret123", Fullname: "Bob"}},
		Folders: []Folder{{ID: folder, Name: "Inbox", UserID: bob}},
		Tags:    []Tag{{ID: tag, Name: "urgent", UserID: bob}},
		Notes: []Note{
			{ID: note, Title: "hello", Content: "world", FolderID: folder, Tags: []string{tag}, UserID: bob},
			{ID: "9d077f8c-6298-438d-9231-e168feed82e1", Title: "loose", UserID: bob},
		},
	}
}

func TestApply(t *testing.T) {
	s, mock := newSeederWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE notes, tags, folders, users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(bob, "bob", digestOf("secret123"), "Bob").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO folders`).
		WithArgs(folder, "Inbox", bob).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tags`).
		WithArgs(tag, "urgent", bob).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO notes`).
		WithArgs(note, "hello", "world", folder, sqlmock.AnyArg(), bob).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO notes`).
		WithArgs("9d077f8c-6298-438d-9231-e168feed82e1", "loose", "", nil, sqlmock.AnyArg(), bob).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := s.Apply(context.Background(), smallDataset())
	require.NoError(t, err)
	assert.Equal(t, Counts{Users: 1, Folders: 1, Tags: 1, Notes: 2}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_InsertErrorRollsBack(t *testing.T) {
	s, mock := newSeederWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO folders`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	got, err := s.Apply(context.Background(), smallDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert folder "+folder)
	assert.Equal(t, Counts{}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_TruncateError(t *testing.T) {
	s, mock := newSeederWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE`).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	_, err := s.Apply(context.Background(), smallDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncate")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_PasswordTooLongFailsBeforeTransaction(t *testing.T) {
	s, mock := newSeederWithMock(t)
	ds := &Dataset{Users: []User{{ID: bob, Username: "bob", Password: string(make([]byte, 73))}}}

	_, err := s.Apply(context.Background(), ds)
	require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	require.NoError(t, mock.ExpectationsWereMet())
}
