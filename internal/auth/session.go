package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	sessionKeyPrefix = "sportai-session||"
	tokensSetKey     = "sportai-sessions"
	tokenLength      = 35
)

var ErrInvalidSession = errors.New("invalid session value")

// Session is what a login token resolves to.
type Session struct {
	UserID    int
	CreatedAt time.Time
}

func (s Session) expired(ttl time.Duration) bool {
	return time.Since(s.CreatedAt) > ttl
}

// encode stores the session as "<user id>|<created at unix>".
func (s Session) encode() string {
	return fmt.Sprintf("%d|%d", s.UserID, s.CreatedAt.Unix())
}

func decodeSession(val string) (Session, error) {
	userIDStr, createdAtStr, ok := strings.Cut(val, "|")
	if !ok {
		return Session{}, ErrInvalidSession
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return Session{}, fmt.Errorf("%w: user id: %w", ErrInvalidSession, err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("%w: created at: %w", ErrInvalidSession, err)
	}
	return Session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}
