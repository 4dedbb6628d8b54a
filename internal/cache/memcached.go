package cache

import (
	"errors"
	"net/url"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

const keyPrefix = "ytlookup:video:"

// MemcachedStore shares cached payloads between server instances
type MemcachedStore struct {
	client *memcache.Client
}

// NewMemcachedStore connects lazily to the given servers
func NewMemcachedStore(servers ...string) *MemcachedStore {
	client := memcache.New(servers...)
	client.Timeout = 500 * time.Millisecond
	return &MemcachedStore{client: client}
}

// Get returns the stored value or ErrEntryNotFound
func (s *MemcachedStore) Get(key string) ([]byte, error) {
	item, err := s.client.Get(storeKey(key))
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return item.Value, nil
}

// Set stores value with a whole-second expiration
func (s *MemcachedStore) Set(key string, value []byte, ttl time.Duration) error {
	return s.client.Set(&memcache.Item{
		Key:        storeKey(key),
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
}

// Delete removes a stored value
func (s *MemcachedStore) Delete(key string) error {
	err := s.client.Delete(storeKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return ErrEntryNotFound
	}
	return err
}

// Ping checks that every server answers
func (s *MemcachedStore) Ping() error {
	return s.client.Ping()
}

func storeKey(key string) string {
	return keyPrefix + url.QueryEscape(key)
}
