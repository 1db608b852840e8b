// Package userstore persists accounts and refresh tokens as JSON documents in
// the key-value store and implements signup, login and session-token
// bookkeeping on top of them.
package userstore

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
)

// Document keys for the account and session documents.
const (
	UsersKey         = "grainTrackerUsers"
	RefreshTokensKey = "grainTrackerRefreshTokens"
)

var (
	// ErrEmailTaken is returned when signing up with an email that exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAdminExists is returned when requesting the admin role after the
	// first account has been created.
	ErrAdminExists = errors.New("admin signup only allowed for the first account")
	// ErrInvalidCredentials is returned on any login failure. It does not
	// distinguish a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooShort is returned for passwords under six characters.
	ErrPasswordTooShort = errors.New("password too short (min 6)")
)

const refreshTokenTTL = 30 * 24 * time.Hour

// Store manages the users and refresh-token documents.
type Store struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
}

// New creates a Store. A nil logger falls back to zap's production logger.
func New(store kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Store{store: store, logger: logger}
}

func (s *Store) loadUsers() ([]models.User, error) {
	raw, ok, err := s.store.Get(UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if !ok {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		s.logger.Error("corrupt users document, starting empty", zap.Error(err))
		return []models.User{}, nil
	}
	return users, nil
}

func (s *Store) saveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.store.Set(UsersKey, raw); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

// Signup creates an account. The admin role is only granted while no accounts
// exist yet; afterwards every signup is a regular user or is rejected.
func (s *Store) Signup(name, email, password string, role models.Role) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" || email == "" {
		return models.User{}, fmt.Errorf("name and email required")
	}
	if len(password) < 6 {
		return models.User{}, ErrPasswordTooShort
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return models.User{}, err
	}
	if role == models.RoleAdmin && len(users) > 0 {
		return models.User{}, ErrAdminExists
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, ErrEmailTaken
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	now := time.Now()
	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		ProfileImage: "/default-avatar.png",
		CreatedAt:    now,
		LastLogin:    &now,
		PasswordHash: hash,
	}
	users = append(users, user)
	if err := s.saveUsers(users); err != nil {
		return models.User{}, err
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return user.Sanitized(), nil
}

// Authenticate verifies email and password, stamps last login and returns the
// account without its hash.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return models.User{}, err
	}
	for i, u := range users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		now := time.Now()
		users[i].LastLogin = &now
		if err := s.saveUsers(users); err != nil {
			return models.User{}, err
		}
		return users[i].Sanitized(), nil
	}
	return models.User{}, ErrInvalidCredentials
}

// FindByID returns the account with the given id, without its hash.
func (s *Store) FindByID(id string) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.Sanitized(), true, nil
		}
	}
	return models.User{}, false, nil
}

// List returns all accounts without hashes, in signup order.
func (s *Store) List() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

// UpdateProfile changes the mutable profile fields of an account. Empty
// arguments leave the corresponding field untouched.
func (s *Store) UpdateProfile(id, name, profileImage string) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return models.User{}, false, err
	}
	for i, u := range users {
		if u.ID != id {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			users[i].Name = name
		}
		if profileImage != "" {
			users[i].ProfileImage = profileImage
		}
		if err := s.saveUsers(users); err != nil {
			return models.User{}, false, err
		}
		return users[i].Sanitized(), true, nil
	}
	return models.User{}, false, nil
}

// SeedDemoUsers ensures the demo admin and regular accounts exist. Idempotent;
// called at startup like the teacher of this pattern seeds its admin.
func (s *Store) SeedDemoUsers() error {
	demo := []struct {
		name, email, password, image string
		role                         models.Role
	}{
		{"Admin User", "admin@graintracker.com", "admin123", "/admin-avatar.png", models.RoleAdmin},
		{"Normal User", "user@graintracker.com", "user123", "/user-avatar.png", models.RoleUser},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	changed := false
	for _, d := range demo {
		exists := false
		for _, u := range users {
			if strings.EqualFold(u.Email, d.email) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			ID:           uuid.NewString(),
			Name:         d.name,
			Email:        d.email,
			Role:         d.role,
			ProfileImage: d.image,
			CreatedAt:    time.Now(),
			PasswordHash: hash,
		})
		changed = true
	}
	if !changed {
		return nil
	}
	s.logger.Info("seeded demo users")
	return s.saveUsers(users)
}

func (s *Store) loadTokens() ([]models.RefreshToken, error) {
	raw, ok, err := s.store.Get(RefreshTokensKey)
	if err != nil {
		return nil, fmt.Errorf("read refresh tokens: %w", err)
	}
	if !ok {
		return []models.RefreshToken{}, nil
	}
	var tokens []models.RefreshToken
	if err := json.Unmarshal(raw, &tokens); err != nil {
		s.logger.Error("corrupt refresh token document, starting empty", zap.Error(err))
		return []models.RefreshToken{}, nil
	}
	return tokens, nil
}

func (s *Store) saveTokens(tokens []models.RefreshToken) error {
	raw, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode refresh tokens: %w", err)
	}
	if err := s.store.Set(RefreshTokensKey, raw); err != nil {
		return fmt.Errorf("write refresh tokens: %w", err)
	}
	return nil
}

func hashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

// CreateRefreshToken generates a random refresh token, stores its hash with a
// 30-day expiry and returns the raw token string.
func (s *Store) CreateRefreshToken(userID string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(b)

	s.mu.Lock()
	defer s.mu.Unlock()
	tokens, err := s.loadTokens()
	if err != nil {
		return "", err
	}
	tokens = append(tokens, models.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		CreatedAt: time.Now(),
	})
	if err := s.saveTokens(tokens); err != nil {
		return "", err
	}
	return raw, nil
}

// ValidateRefreshToken looks up a raw refresh token and reports whether it is
// known, unrevoked and unexpired.
func (s *Store) ValidateRefreshToken(raw string) (models.RefreshToken, bool, error) {
	th := hashToken(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	tokens, err := s.loadTokens()
	if err != nil {
		return models.RefreshToken{}, false, err
	}
	for _, t := range tokens {
		if t.TokenHash != th {
			continue
		}
		if t.Revoked || time.Now().After(t.ExpiresAt) {
			return models.RefreshToken{}, false, nil
		}
		return t, true, nil
	}
	return models.RefreshToken{}, false, nil
}

// RevokeRefreshToken marks a raw refresh token revoked. Returns false when the
// token is unknown.
func (s *Store) RevokeRefreshToken(raw string) (bool, error) {
	th := hashToken(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	tokens, err := s.loadTokens()
	if err != nil {
		return false, err
	}
	for i, t := range tokens {
		if t.TokenHash != th {
			continue
		}
		tokens[i].Revoked = true
		if err := s.saveTokens(tokens); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
