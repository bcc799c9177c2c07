package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const sessionKeyPrefix = "session:"

// SessionRepository remembers which game a browser session drives.
type SessionRepository interface {
	Bind(ctx context.Context, sessionID, gameID string) error
	GameID(ctx context.Context, sessionID string) (string, error)
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository keeps bindings for ttl after they were last written.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (that *dbSession) Bind(ctx context.Context, sessionID, gameID string) error {
	if err := that.client.Set(ctx, sessionKey(sessionID), gameID, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to bind session: %w", err)
	}

	return nil
}

func (that *dbSession) GameID(ctx context.Context, sessionID string) (string, error) {
	gameID, err := that.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrSessionNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	return gameID, nil
}
