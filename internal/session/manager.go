package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JagtapGaurav/Matrimonial/internal/cache"
)

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("session not found")

// Manager issues opaque bearer tokens and resolves them back to user ids.
// Each token is a single revocable slot in Redis; logout deletes it.
type Manager struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

func NewManager(c *cache.RedisCache, ttl time.Duration) (*Manager, error) {
	if c == nil {
		return nil, fmt.Errorf("redis cache is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{cache: c, ttl: ttl}, nil
}

// Start creates a session for the user and returns the bearer token.
func (m *Manager) Start(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("user id is required")
	}
	token := uuid.NewString()
	if err := m.cache.Set(ctx, m.cache.KeyForSession(token), userID, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Lookup resolves a token to the user id it was issued for.
// The TTL is refreshed on every successful lookup.
func (m *Manager) Lookup(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrNoSession
	}
	key := m.cache.KeyForSession(token)
	userID, err := m.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", ErrNoSession
		}
		return "", err
	}
	_ = m.cache.Client.Expire(ctx, key, m.ttl).Err()
	return userID, nil
}

// Revoke destroys the session tied to the token. Revoking a token that is
// already gone is not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return m.cache.Del(ctx, m.cache.KeyForSession(token))
}

// RevokeUser destroys every session belonging to the user. Used when an
// account is deactivated or deleted while logged in.
func (m *Manager) RevokeUser(ctx context.Context, userID string) error {
	iter := m.cache.Client.Scan(ctx, 0, m.cache.KeyForSession("*"), 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		owner, err := m.cache.Get(ctx, key)
		if err != nil {
			continue
		}
		if owner == userID {
			_ = m.cache.Del(ctx, key)
		}
	}
	return iter.Err()
}
