package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/auth"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/config"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/models"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/repomanager"
)

const (
	usernameMinLength = 1
	passwordMinLength = 8
	passwordMaxLength = 72
)

// RegisterInput is a signup request whose fields are already known to be strings.
type RegisterInput struct {
	Username string
	Password string
	Fullname string
}

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            bcrypt.DefaultCost,
	}
}

func validateRegistration(in RegisterInput) error {
	fields := []struct{ name, value string }{
		{"username", in.Username},
		{"password", in.Password},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) != f.value {
			return common.Validation(f.name, "Cannot start or end with whitespace")
		}
	}

	if utf8.RuneCountInString(in.Username) < usernameMinLength {
		return common.Validation("username", fmt.Sprintf("Must be at least %d characters long", usernameMinLength))
	}
	if utf8.RuneCountInString(in.Password) < passwordMinLength {
		return common.Validation("password", fmt.Sprintf("Must be at least %d characters long", passwordMinLength))
	}
	if utf8.RuneCountInString(in.Password) > passwordMaxLength {
		return common.Validation("password", fmt.Sprintf("Must be at most %d characters long", passwordMaxLength))
	}

	return nil
}

// Register validates the input, checks that the username is free, and stores
// the user with a bcrypt digest of the password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, common.DuplicateUsername()
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, common.Validation("password", fmt.Sprintf("Must be at most %d characters long", passwordMaxLength))
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{
		Username: in.Username,
		Password: string(digest),
		Fullname: in.Fullname,
	})
	if err != nil {
		// lost the race against a concurrent signup
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.DuplicateUsername()
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate returns the user when the password matches its stored digest.
// Unknown users and wrong passwords yield the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.InvalidCredentials()
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.InvalidCredentials()
	}

	return user, nil
}

func (s *UserService) IssueToken(user *models.User) (string, error) {
	return s.RefreshToken(&auth.Principal{ID: user.ID, Username: user.Username, Fullname: user.Fullname})
}

// RefreshToken signs a fresh token for a principal whose current token was
// already verified by the caller. The password is not checked again.
func (s *UserService) RefreshToken(p *auth.Principal) (string, error) {
	token, err := auth.GenerateToken(*p, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return token, nil
}

func (s *UserService) ParseToken(token string) (*auth.Principal, error) {
	return auth.ParseToken(token, s.jwtSecret)
}
