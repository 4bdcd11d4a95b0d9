package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix  = "sportai-chat||"
	DefaultSessionTTL = 2 * time.Hour
)

var ErrSessionNotFound = errors.New("chat session not found")

// Session is a single conversation of a user with the coach.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionStore keeps chat sessions in redis, each under its own key with a
// sliding TTL.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	newID       func() string
	now         func() time.Time
}

func NewSessionStore(redisClient *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		redisClient: redisClient,
		ttl:         ttl,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

func (s *SessionStore) Create(ctx context.Context, userID int) (*Session, error) {
	now := s.now()
	session := &Session{
		ID:        s.newID(),
		UserID:    userID,
		Turns:     []Turn{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session with the given id, if it belongs to the user.
// Sessions of other users are reported as not found.
func (s *SessionStore) Get(ctx context.Context, userID int, id string) (*Session, error) {
	raw, err := s.redisClient.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get chat session %s: %w", id, err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode chat session %s: %w", id, err)
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode chat session %s: %w", session.ID, err)
	}
	if err := s.redisClient.Set(ctx, sessionKeyPrefix+session.ID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save chat session %s: %w", session.ID, err)
	}
	return nil
}

// Reset clears the history of the session, keeping its id.
func (s *SessionStore) Reset(ctx context.Context, session *Session) error {
	session.Turns = []Turn{}
	session.UpdatedAt = s.now()
	return s.Save(ctx, session)
}
