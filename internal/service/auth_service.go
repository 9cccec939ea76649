package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// HashPassword produces a salted one-way digest of the plaintext. Two calls
// with the same input yield different digests.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest. A
// malformed digest is a mismatch, not an error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Register creates a new account. The caller is not logged in by this call;
// a separate login is required.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	digest, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{Username: username, HashedPassword: digest}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		// Lost a race against a concurrent registration of the same name.
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials. An unknown username and a wrong password fail
// identically so attempts cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrUnauthenticated
	case err != nil:
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !CheckPassword(password, user.HashedPassword) {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
