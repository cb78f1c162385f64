package cart

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/solveighty/Coffee-Blend/pkg/cache"
)

// MemoryStorage keeps slots in process memory. Useful as a test double and
// for carts that should not outlive the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// FileStorage keeps one file per slot under a directory, the closest analog
// to a browser's localStorage for a client process.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		log.Printf("Failed to write cart slot %s: %v", key, err)
	}
}

func (s *FileStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to remove cart slot %s: %v", key, err)
	}
}

// RedisStorage keeps slots in Redis so a cart can survive across hosts.
// Storage errors degrade to absent reads and dropped writes.
type RedisStorage struct {
	cache *cache.RedisCache
}

func NewRedisStorage(c *cache.RedisCache) *RedisStorage {
	return &RedisStorage{cache: c}
}

func (s *RedisStorage) Get(key string) (string, bool) {
	value, err := s.cache.Get(context.Background(), key)
	if err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Printf("Failed to read cart slot %s: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *RedisStorage) Set(key, value string) {
	if err := s.cache.Set(context.Background(), key, value, 0); err != nil {
		log.Printf("Failed to write cart slot %s: %v", key, err)
	}
}

func (s *RedisStorage) Remove(key string) {
	if err := s.cache.Delete(context.Background(), key); err != nil {
		log.Printf("Failed to remove cart slot %s: %v", key, err)
	}
}
