package safety

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SessionStore persists a session's chosen working directory, keyed by
// tenant. It is the only durable state the engine depends on; the
// store owns its own consistency guarantees per tenant key.
type SessionStore interface {
	Get(ctx context.Context, tenantID string) (string, bool, error)
	Set(ctx context.Context, tenantID, workingDir string) error
	Delete(ctx context.Context, tenantID string) error
}

// DefaultSessionTTL bounds how long a tenant's working directory is
// remembered without being refreshed.
const DefaultSessionTTL = 8 * time.Hour

// sessionKeyPrefix namespaces tenant keys inside the cache.
const sessionKeyPrefix = "session:workingDir:"

// CacheStore is an in-memory, TTL-bounded SessionStore.
type CacheStore struct {
	cache *gocache.Cache
}

// NewCacheStore creates a CacheStore. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewCacheStore(ttl time.Duration) *CacheStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &CacheStore{cache: gocache.New(ttl, ttl/2)}
}

// Get returns the tenant's working directory, if one is stored.
func (s *CacheStore) Get(_ context.Context, tenantID string) (string, bool, error) {
	value, found := s.cache.Get(sessionKeyPrefix + tenantID)
	if !found {
		return "", false, nil
	}
	dir, ok := value.(string)
	return dir, ok, nil
}

// Set stores the tenant's working directory, refreshing the TTL.
func (s *CacheStore) Set(_ context.Context, tenantID, workingDir string) error {
	s.cache.SetDefault(sessionKeyPrefix+tenantID, workingDir)
	return nil
}

// Delete forgets the tenant's working directory.
func (s *CacheStore) Delete(_ context.Context, tenantID string) error {
	s.cache.Delete(sessionKeyPrefix + tenantID)
	return nil
}
