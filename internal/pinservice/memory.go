package pinservice

import (
	"context"
	"sync"
	"time"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/patrickmn/go-cache"
)

// MemoryCredentials keeps credentials for the life of the process.
type MemoryCredentials struct {
	mu    sync.RWMutex
	items map[string]model.PinCredential
}

func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{items: make(map[string]model.PinCredential)}
}

func (m *MemoryCredentials) Get(_ context.Context, key string) (*model.PinCredential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.items[key]
	if !ok {
		return nil, model.ErrPinNotSet
	}
	c.Hash = append([]byte(nil), c.Hash...)
	return &c, nil
}

func (m *MemoryCredentials) Put(_ context.Context, key string, cred *model.PinCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = model.PinCredential{Hash: append([]byte(nil), cred.Hash...), Enabled: cred.Enabled}
	return nil
}

// MemoryAttempts is an AttemptStore on go-cache; counters and locks expire on their own.
type MemoryAttempts struct {
	mu sync.Mutex
	c  *cache.Cache
}

func NewMemoryAttempts() *MemoryAttempts {
	return &MemoryAttempts{c: cache.New(cache.NoExpiration, time.Minute)}
}

func (m *MemoryAttempts) Fail(_ context.Context, key string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := "fail:" + key
	if err := m.c.Add(k, 1, window); err == nil {
		return 1, nil
	}
	return m.c.IncrementInt(k, 1)
}

func (m *MemoryAttempts) Lock(_ context.Context, key string, until time.Time) error {
	m.c.Set("lock:"+key, until, time.Until(until))
	return nil
}

func (m *MemoryAttempts) LockedUntil(_ context.Context, key string) (time.Time, error) {
	v, ok := m.c.Get("lock:" + key)
	if !ok {
		return time.Time{}, nil
	}
	return v.(time.Time), nil
}

func (m *MemoryAttempts) Reset(_ context.Context, key string) error {
	m.c.Delete("fail:" + key)
	m.c.Delete("lock:" + key)
	return nil
}
