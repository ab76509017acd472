package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_assessment_engine/internal/models"
	"github.com/shenikar/crisis_assessment_engine/internal/service"
)

// SessionRepository хранит сессии диалогов в Redis. Значение - JSON,
// TTL масштаба одного разговора: истечение срока само стирает данные,
// долговременного хранения у сессий нет.
type SessionRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSessionRepository(redisClient *redis.Client, ttl time.Duration) service.SessionRepository {
	return &SessionRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Save сохраняет сессию, обновляя ее TTL
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.redisClient.Set(ctx, sessionKey(session.ID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get возвращает сессию по ID или service.ErrSessionNotFound
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	val, err := r.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}

// Delete удаляет сессию
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
