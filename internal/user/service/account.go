package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/petpalhq/petpal/internal/user/domain"
	"github.com/petpalhq/petpal/internal/user/store"
	"github.com/petpalhq/petpal/pkg/cryptox"
	"github.com/petpalhq/petpal/pkg/idx"
	"github.com/petpalhq/petpal/pkg/slogx"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
	MinPasswordLength = 8
	MaxPasswordLength = 256
)

var (
	ErrInvalidInput       = errors.New("invalid_input")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type AccountService struct {
	Store store.Store
}

// Register creates a new account with an argon2id password verifier.
// The returned user carries an empty PasswordHash.
func (s *AccountService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	if err := validateUsername(username); err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID, "username", username)

	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller: both return
// ErrInvalidCredentials, and the unknown-username path still burns an
// argon2 verification so response timing does not leak which one it was.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			burnPasswordVerification(password)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUserByID fetches a user by id with the password verifier stripped.
func (s *AccountService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// ListUsers returns all accounts with password verifiers stripped.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func validateUsername(username string) error {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return ErrInvalidInput
	}
	for _, r := range username {
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if !isLower && !isUpper && !isDigit && r != '-' && r != '_' && r != '.' {
			return ErrInvalidInput
		}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return ErrInvalidInput
	}
	return nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordVerification runs a throwaway argon2 verification so the
// unknown-username login path costs about as much as the known-username one.
func burnPasswordVerification(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("timing-equalizer-placeholder")
	})
	_ = cryptox.VerifyPassword(password, dummyHash)
}
