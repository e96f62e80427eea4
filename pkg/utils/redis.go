package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
)

// maxSessionTurns caps stored history length to bound memory per session.
const maxSessionTurns = 50

// ErrSessionNotFound reports a lookup for a session that does not exist or
// has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps per-session chat history in Redis on behalf of the
// presentation layer. The assistant core never reads or writes it; callers
// own their history and pass it in on every turn.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// SessionHistory is the stored form of one conversation session
type SessionHistory struct {
	SessionID string            `json:"session_id"`
	Turns     []models.ChatTurn `json:"turns"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSessionStore creates a new Redis-backed session store
func NewSessionStore(cfg *config.Config) *SessionStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{Addr: "localhost:6379"}
	}

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &SessionStore{
		client: redis.NewClient(opts),
		ttl:    cfg.Redis.SessionTTL,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *SessionStore) Close() error {
	return s.client.Close()
}

// AppendTurns appends chat turns to a session, creating the session if it
// does not exist yet. History is truncated to the most recent turns.
func (s *SessionStore) AppendTurns(ctx context.Context, sessionID string, turns ...models.ChatTurn) error {
	history, err := s.GetHistory(ctx, sessionID)
	if err != nil {
		history = &SessionHistory{
			SessionID: sessionID,
			Turns:     []models.ChatTurn{},
			CreatedAt: time.Now(),
		}
	}

	history.Turns = append(history.Turns, turns...)
	if len(history.Turns) > maxSessionTurns {
		history.Turns = history.Turns[len(history.Turns)-maxSessionTurns:]
	}
	history.UpdatedAt = time.Now()

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal session history: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to save session history", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to save session history: %w", err)
	}

	return nil
}

// GetHistory retrieves the stored history of a session
func (s *SessionStore) GetHistory(ctx context.Context, sessionID string) (*SessionHistory, error) {
	data, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session history: %w", err)
	}

	var history SessionHistory
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session history: %w", err)
	}

	return &history, nil
}

// DeleteSession removes a session and its history
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.sessionKey(sessionID)).Err()
}

func (s *SessionStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("conversation:session:%s", sessionID)
}

// IsHealthy checks if Redis is connected and healthy
func (s *SessionStore) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}
