package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// Manager issues and validates signed session tokens carrying a numeric user
// ID. The signing key is process-wide configuration; a Manager is safe for
// concurrent use.
type Manager struct {
	key []byte
}

func NewManager(secret string) *Manager {
	return &Manager{key: []byte(secret)}
}

// Issue signs a new token identifying the given user.
func (m *Manager) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Parse extracts the user ID from a token. Missing, expired, forged or
// otherwise malformed tokens report ok=false; there is never an error for
// the caller to handle.
func (m *Manager) Parse(token string) (userID uint, ok bool) {
	if token == "" {
		return 0, false
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil || !parsed.Valid {
		return 0, false
	}

	claims, isRegistered := parsed.Claims.(*jwt.RegisteredClaims)
	if !isRegistered {
		return 0, false
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
