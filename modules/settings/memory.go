package settings

import (
	"context"
	"strconv"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps settings in process memory. It is the store used when no
// database DSN is configured; everything resets on restart.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(ctx context.Context, chatID int64) (Settings, error) {
	if v, ok := m.cache.Get(memoryKey(chatID)); ok {
		return v.(Settings), nil
	}
	return Defaults(chatID), nil
}

func (m *MemoryStore) Put(ctx context.Context, s Settings) error {
	m.cache.Set(memoryKey(s.ChatID), s, gocache.NoExpiration)
	return nil
}

func memoryKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
