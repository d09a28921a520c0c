package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/logging"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/auth"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/services"
)

const (
	testUserID = "0b6f5c1e-6f1a-4d0e-9a43-7d1c0c1f0a01"
	testToken  = "good-token"
	folderID   = "5a0c1d2e-3f40-4b5c-8d6e-7f8091a2b3c4"
	tagID      = "6b1d2e3f-4051-4c6d-9e7f-8091a2b3c4d5"
	noteID     = "8d3f4051-6273-4e8f-9091-a2b3c4d5e6f7"
)

var errBoom = errors.New("boom")

// --- users ---

type fakeUsers struct {
	registerIn  services.RegisterInput
	registerOut *models.User
	registerErr error

	authUser *models.User
	authErr  error

	refreshed *auth.Principal
}

func (f *fakeUsers) Register(ctx context.Context, in services.RegisterInput) (*models.User, error) {
	f.registerIn = in
	return f.registerOut, f.registerErr
}

func (f *fakeUsers) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	return f.authUser, f.authErr
}

func (f *fakeUsers) IssueToken(user *models.User) (string, error) {
	return "issued-for-" + user.Username, nil
}

func (f *fakeUsers) RefreshToken(p *auth.Principal) (string, error) {
	f.refreshed = p
	return "refreshed-for-" + p.Username, nil
}

func (f *fakeUsers) ParseToken(token string) (*auth.Principal, error) {
	if token != testToken {
		return nil, common.ErrInvalidToken
	}
	return &auth.Principal{ID: testUserID, Username: "bobuser"}, nil
}

// --- folders / tags ---

type fakeFolders struct {
	userID, id, name string
	out              *models.Folder
	list             []*models.Folder
	err              error
}

func (f *fakeFolders) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	f.userID = userID
	return f.list, f.err
}
func (f *fakeFolders) Get(ctx context.Context, userID, id string) (*models.Folder, error) {
	f.userID, f.id = userID, id
	return f.out, f.err
}
func (f *fakeFolders) Create(ctx context.Context, userID, name string) (*models.Folder, error) {
	f.userID, f.name = userID, name
	return f.out, f.err
}
func (f *fakeFolders) Update(ctx context.Context, userID, id, name string) (*models.Folder, error) {
	f.userID, f.id, f.name = userID, id, name
	return f.out, f.err
}
func (f *fakeFolders) Delete(ctx context.Context, userID, id string) error {
	f.userID, f.id = userID, id
	return f.err
}

type fakeTags struct {
	userID, id, name string
	out              *models.Tag
	list             []*models.Tag
	err              error
}

func (f *fakeTags) List(ctx context.Context, userID string) ([]*models.Tag, error) {
	f.userID = userID
	return f.list, f.err
}
func (f *fakeTags) Get(ctx context.Context, userID, id string) (*models.Tag, error) {
	f.userID, f.id = userID, id
	return f.out, f.err
}
func (f *fakeTags) Create(ctx context.Context, userID, name string) (*models.Tag, error) {
	f.userID, f.name = userID, name
	return f.out, f.err
}
func (f *fakeTags) Update(ctx context.Context, userID, id, name string) (*models.Tag, error) {
	f.userID, f.id, f.name = userID, id, name
	return f.out, f.err
}
func (f *fakeTags) Delete(ctx context.Context, userID, id string) error {
	f.userID, f.id = userID, id
	return f.err
}

// --- notes ---

type fakeNotes struct {
	userID, id                     string
	searchTerm, folderID, tagQuery string
	in                             services.NoteInput
	out                            *models.Note
	list                           []*models.Note
	err                            error
}

func (f *fakeNotes) List(ctx context.Context, userID, searchTerm, folderID, tagID string) ([]*models.Note, error) {
	f.userID, f.searchTerm, f.folderID, f.tagQuery = userID, searchTerm, folderID, tagID
	return f.list, f.err
}
func (f *fakeNotes) Get(ctx context.Context, userID, id string) (*models.Note, error) {
	f.userID, f.id = userID, id
	return f.out, f.err
}
func (f *fakeNotes) Create(ctx context.Context, userID string, in services.NoteInput) (*models.Note, error) {
	f.userID, f.in = userID, in
	return f.out, f.err
}
func (f *fakeNotes) Update(ctx context.Context, userID, id string, in services.NoteInput) (*models.Note, error) {
	f.userID, f.id, f.in = userID, id, in
	return f.out, f.err
}
func (f *fakeNotes) Delete(ctx context.Context, userID, id string) error {
	f.userID, f.id = userID, id
	return f.err
}

// --- exports / db ---

type fakeExports struct {
	userID string
	out    *services.ExportResult
	err    error
}

func (f *fakeExports) Export(ctx context.Context, userID string) (*services.ExportResult, error) {
	f.userID = userID
	return f.out, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

// --- harness ---

type harness struct {
	users   *fakeUsers
	folders *fakeFolders
	tags    *fakeTags
	notes   *fakeNotes
	exports *fakeExports
	router  *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &harness{
		users:   &fakeUsers{},
		folders: &fakeFolders{},
		tags:    &fakeTags{},
		notes:   &fakeNotes{},
		exports: &fakeExports{},
	}
	h.router = NewRouter(&Handler{
		Users:   h.users,
		Folders: h.folders,
		Tags:    h.tags,
		Notes:   h.notes,
		Exports: h.exports,
		DB:      fakePinger{},
		Logger:  logging.Discard(),
	})
	return h
}

func (h *harness) do(t *testing.T, method, path, payload string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	resp := httptest.NewRecorder()
	h.router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(resp.Body.Bytes()), &out), resp.Body.String())
	return out
}

func requireError(t *testing.T, resp *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, resp.Code, resp.Body.String())
	out := decode(t, resp)
	require.Equal(t, float64(status), out["status"])
	require.Equal(t, message, out["message"])
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}
