// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"fitplan/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	users       []*domain.User
	sessions    map[string]*domain.Session
	profiles    map[int64]domain.Profile
	quizResults []domain.QuizResult
	progress    []domain.ProgressLog

	userIDCounter     int64
	progressIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		profiles: make(map[int64]domain.Profile),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.QuizResultRepository = (*DB)(nil)
var _ domain.ProgressRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- ProfileRepository ---

// GetProfile returns a copy of the user's profile.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// UpsertProfile stores the profile, replacing any previous one.
func (db *DB) UpsertProfile(ctx context.Context, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p.UpdatedAt = p.UpdatedAt.UTC()
	db.profiles[p.UserID] = p
	return nil
}

// --- QuizResultRepository ---

// SaveQuizResult appends a quiz result.
func (db *DB) SaveQuizResult(ctx context.Context, r domain.QuizResult) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.quizResults {
		if existing.ID == r.ID {
			return errors.New("quiz result already exists")
		}
	}
	r.CreatedAt = r.CreatedAt.UTC()
	db.quizResults = append(db.quizResults, cloneQuizResult(r))
	return nil
}

// LatestQuizResult returns the newest result for the user.
func (db *DB) LatestQuizResult(ctx context.Context, userID int64) (*domain.QuizResult, error) {
	results, err := db.ListQuizResults(ctx, userID, 1)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

// ListQuizResults lists the user's results, newest first.
func (db *DB) ListQuizResults(ctx context.Context, userID int64, limit int) ([]domain.QuizResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	// Iterate backwards so equal timestamps keep insertion order newest first.
	var result []domain.QuizResult
	for i := len(db.quizResults) - 1; i >= 0; i-- {
		if db.quizResults[i].UserID == userID {
			result = append(result, cloneQuizResult(db.quizResults[i]))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// cloneQuizResult copies the plan slices so stored results never alias
// caller memory.
func cloneQuizResult(r domain.QuizResult) domain.QuizResult {
	r.Plan = domain.Plan{
		Workout: slices.Clone(r.Plan.Workout),
		Diet:    slices.Clone(r.Plan.Diet),
		Tips:    slices.Clone(r.Plan.Tips),
	}
	return r
}

// --- ProgressRepository ---

// AddProgressLog adds a progress log.
func (db *DB) AddProgressLog(ctx context.Context, l domain.ProgressLog) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.progressIDCounter++
	l.ID = db.progressIDCounter
	l.CreatedAt = l.CreatedAt.UTC()
	db.progress = append(db.progress, l)
	return l.ID, nil
}

// ListRecentProgressLogs lists the most recent logs of a user.
func (db *DB) ListRecentProgressLogs(ctx context.Context, userID int64, limit int) ([]domain.ProgressLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.ProgressLog
	for _, l := range db.progress {
		if l.UserID == userID {
			result = append(result, l)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// DeleteLatestProgressLog deletes the most recent log of a user.
func (db *DB) DeleteLatestProgressLog(ctx context.Context, userID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, l := range db.progress {
		if l.UserID != userID {
			continue
		}
		if lastIdx == -1 {
			lastIdx = i
			continue
		}
		last := db.progress[lastIdx]
		if l.CreatedAt.After(last.CreatedAt) || (l.CreatedAt.Equal(last.CreatedAt) && l.ID > last.ID) {
			lastIdx = i
		}
	}

	if lastIdx == -1 {
		return false, nil
	}
	db.progress = append(db.progress[:lastIdx], db.progress[lastIdx+1:]...)
	return true, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
