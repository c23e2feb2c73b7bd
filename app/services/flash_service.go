// Package services holds supporting application services used by the
// HTTP layer
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlashService stores one-shot confirmation messages keyed by client.
// A message is returned at most once: reading it removes it.
type FlashService interface {
	Set(ctx context.Context, key, message string) error
	Pop(ctx context.Context, key string) (string, error)
}

// flashTTL bounds how long an unread confirmation survives
const flashTTL = 10 * time.Minute

// RedisFlashService implements FlashService on Redis
type RedisFlashService struct {
	client *redis.Client
	prefix string
}

// NewRedisFlashService creates a Redis-backed flash service. All keys
// are namespaced under prefix.
func NewRedisFlashService(client *redis.Client, prefix string) FlashService {
	return &RedisFlashService{client: client, prefix: prefix + "flash:"}
}

func (s *RedisFlashService) Set(ctx context.Context, key, message string) error {
	return s.client.Set(ctx, s.prefix+key, message, flashTTL).Err()
}

func (s *RedisFlashService) Pop(ctx context.Context, key string) (string, error) {
	message, err := s.client.GetDel(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return message, nil
}

// MemoryFlashService implements FlashService in process memory. Used
// when no Redis address is configured and in tests.
type MemoryFlashService struct {
	mu       sync.Mutex
	messages map[string]string
}

// NewMemoryFlashService creates an in-memory flash service
func NewMemoryFlashService() FlashService {
	return &MemoryFlashService{messages: make(map[string]string)}
}

func (s *MemoryFlashService) Set(_ context.Context, key, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[key] = message
	return nil
}

func (s *MemoryFlashService) Pop(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[key]
	if !ok {
		return "", nil
	}
	delete(s.messages, key)
	return message, nil
}
