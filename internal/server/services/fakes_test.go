package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/dbx"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/folders"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/notes"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/tags"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/users"
)

const (
	userA   = "0b6f5c1e-6f1a-4d0e-9a43-7d1c0c1f0a01"
	folderA = "5a0c1d2e-3f40-4b5c-8d6e-7f8091a2b3c4"
	tagA    = "6b1d2e3f-4051-4c6d-9e7f-8091a2b3c4d5"
	tagB    = "7c2e3f40-5162-4d7e-8f80-91a2b3c4d5e6"
	noteA   = "8d3f4051-6273-4e8f-9091-a2b3c4d5e6f7"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func requireAppError(t *testing.T, err error, status int, message string) *common.Error {
	t.Helper()
	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
	return appErr
}

// --- users ---

type fakeUsersRepo struct {
	getOut    *models.User
	getErr    error
	createErr error
	created   *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-new"
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

// --- folders ---

type fakeFoldersRepo struct {
	mu sync.Mutex

	listOut   []*models.Folder
	listErr   error
	getOut    *models.Folder
	getErr    error
	exists    bool
	existsErr error
	existsFn  func(ctx context.Context) (bool, error)
	createErr error
	updateErr error
	deleteErr error

	existsCalls int
	created     *models.Folder
	updated     *models.Folder
	deletedID   string
}

func (f *fakeFoldersRepo) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	return f.listOut, f.listErr
}

func (f *fakeFoldersRepo) Get(ctx context.Context, userID, id string) (*models.Folder, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeFoldersRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	f.mu.Lock()
	f.existsCalls++
	f.mu.Unlock()
	if f.existsFn != nil {
		return f.existsFn(ctx)
	}
	return f.exists, f.existsErr
}

func (f *fakeFoldersRepo) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	folder.ID = folderA
	f.created = folder
	return folder, nil
}

func (f *fakeFoldersRepo) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = folder
	return folder, nil
}

func (f *fakeFoldersRepo) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

// --- tags ---

type fakeTagsRepo struct {
	mu sync.Mutex

	listOut   []*models.Tag
	listErr   error
	getOut    *models.Tag
	getErr    error
	count     int
	countErr  error
	countFn   func(ctx context.Context) (int, error)
	createErr error
	updateErr error
	deleteErr error

	countCalls int
	countedIDs []string
	created    *models.Tag
	updated    *models.Tag
	deletedID  string
}

func (f *fakeTagsRepo) List(ctx context.Context, userID string) ([]*models.Tag, error) {
	return f.listOut, f.listErr
}

func (f *fakeTagsRepo) Get(ctx context.Context, userID, id string) (*models.Tag, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTagsRepo) CountOwned(ctx context.Context, userID string, ids []string) (int, error) {
	f.mu.Lock()
	f.countCalls++
	f.countedIDs = ids
	f.mu.Unlock()
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return f.count, f.countErr
}

func (f *fakeTagsRepo) Create(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	tag.ID = tagA
	f.created = tag
	return tag, nil
}

func (f *fakeTagsRepo) Update(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = tag
	return tag, nil
}

func (f *fakeTagsRepo) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

// --- notes ---

type fakeNotesRepo struct {
	listOut   []*models.Note
	listErr   error
	getOut    *models.Note
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	unsetErr  error
	pullErr   error

	listFilter notes.Filter
	created    *models.Note
	updated    *models.Note
	deletedID  string
	unsetCalls []string
	pullCalls  []string
}

func (f *fakeNotesRepo) List(ctx context.Context, filter notes.Filter) ([]*models.Note, error) {
	f.listFilter = filter
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) Get(ctx context.Context, userID, id string) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	note.ID = noteA
	f.created = note
	return note, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = note
	return note, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func (f *fakeNotesRepo) UnsetFolder(ctx context.Context, userID, folderID string) (int64, error) {
	f.unsetCalls = append(f.unsetCalls, folderID)
	return 1, f.unsetErr
}

func (f *fakeNotesRepo) PullTag(ctx context.Context, userID, tagID string) (int64, error) {
	f.pullCalls = append(f.pullCalls, tagID)
	return 1, f.pullErr
}

// --- manager ---

type fakeRepoManager struct {
	u *fakeUsersRepo
	f *fakeFoldersRepo
	t *fakeTagsRepo
	n *fakeNotesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		f: &fakeFoldersRepo{},
		t: &fakeTagsRepo{},
		n: &fakeNotesRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository          { return m.u }
func (m *fakeRepoManager) Folders(db dbx.DBTX) folders.Repository      { return m.f }
func (m *fakeRepoManager) Tags(db dbx.DBTX) tags.Repository            { return m.t }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notes.Repository          { return m.n }
