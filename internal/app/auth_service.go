// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitplan/internal/domain"
	"fitplan/internal/planner"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists indicates that the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrWeakPassword indicates that a password is too short to register.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

const (
	defaultSessionTTL = 24 * time.Hour
	minPasswordLen    = 6
)

// AuthService handles authentication and session management.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	profiles   domain.ProfileRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service. New accounts get an
// empty profile in profiles so the dashboard has somewhere to read from.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, profiles domain.ProfileRepository) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		profiles:   profiles,
		sessionTTL: defaultSessionTTL,
	}
}

// WithSessionTTL overrides how long new sessions stay valid.
func (s *AuthService) WithSessionTTL(ttl time.Duration) *AuthService {
	if ttl > 0 {
		s.sessionTTL = ttl
	}
	return s
}

// SessionTTL reports how long new sessions stay valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates a password account and its empty profile.
func (s *AuthService) Register(ctx context.Context, username, password, fullName string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &planner.ValidationError{Field: "username", Reason: "is required"}
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	p := domain.Profile{
		UserID:        user.ID,
		FullName:      strings.TrimSpace(fullName),
		ActivityLevel: domain.ActivitySedentary,
		GoalType:      domain.GoalLoseWeight,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.profiles.UpsertProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return user, nil
}

// Login authenticates a user and creates a session.
func (s *AuthService) Login(ctx context.Context, username, password, userAgent, ip string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.newSession(ctx, user.ID, userAgent, ip)
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks if a session token is valid and matches the user agent.
func (s *AuthService) ValidateSession(ctx context.Context, token, userAgent string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	if !ConstantTimeCompare(session.UserAgent, userAgent) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// CreateInitialUser creates the first user if no users exist.
func (s *AuthService) CreateInitialUser(ctx context.Context, username, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrUserExists
	}

	_, err = s.Register(ctx, username, password, "")
	return err
}

// ValidateForwardAuth validates a request from Authelia forward auth.
// It checks for the Remote-User header set by Authelia.
func (s *AuthService) ValidateForwardAuth(ctx context.Context, remoteUser string) (*domain.User, error) {
	if remoteUser == "" {
		return nil, errors.New("no remote user header")
	}
	return s.provision(ctx, remoteUser)
}

// LoginWithUser creates a session for an already authenticated user (e.g. via SSO).
func (s *AuthService) LoginWithUser(ctx context.Context, username, userAgent, ip string) (string, error) {
	user, err := s.provision(ctx, username)
	if err != nil {
		return "", err
	}
	return s.newSession(ctx, user.ID, userAgent, ip)
}

// PurgeExpiredSessions drops every session past its expiry.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx)
}

// provision returns the named user, creating a passwordless account for SSO
// logins on first sight.
func (s *AuthService) provision(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err == nil && user != nil {
		return user, nil
	}

	user, err = s.users.Create(ctx, username, "")
	if err != nil {
		// Lost a race on the unique constraint; the other request created it.
		user, err = s.users.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return user, nil
	}

	p := domain.Profile{
		UserID:        user.ID,
		ActivityLevel: domain.ActivitySedentary,
		GoalType:      domain.GoalLoseWeight,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.profiles.UpsertProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return user, nil
}

func (s *AuthService) newSession(ctx context.Context, userID int64, userAgent, ip string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	if err := s.sessions.Create(ctx, userID, token, userAgent, ip, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ConstantTimeCompare performs a constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
