package alert

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/redissvc"
)

// DailyAlertLogKey is the Redis list holding the alerts of the current day.
const DailyAlertLogKey = "coffeemaker:alerts:daily"

type LowStockEntry struct {
	Ingredient string    `json:"ingredient"`
	Level      int       `json:"level"`
	Threshold  int       `json:"threshold"`
	Time       time.Time `json:"time"`
}

// Store buffers alerts until the daily summary drains them.
type Store interface {
	Push(entry LowStockEntry) error
	Drain() ([]LowStockEntry, error)
}

type MemoryStore struct {
	mu      sync.Mutex
	entries []LowStockEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Push(entry LowStockEntry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Drain() ([]LowStockEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.entries
	s.entries = nil
	return out, nil
}

type RedisStore struct {
	rs *redissvc.RedisService
}

func NewRedisStore(rs *redissvc.RedisService) *RedisStore {
	return &RedisStore{rs: rs}
}

func (s *RedisStore) Push(entry LowStockEntry) error {
	return s.rs.PushJSON(DailyAlertLogKey, entry)
}

// Drain skips entries that no longer decode.
func (s *RedisStore) Drain() ([]LowStockEntry, error) {
	items, err := s.rs.DrainList(DailyAlertLogKey)
	if err != nil {
		return nil, err
	}

	var entries []LowStockEntry
	for _, item := range items {
		var entry LowStockEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
