package authority

import (
	"reflect"
	"sync"
	"time"
)

// CachedResolver wraps a Resolver with TTL-based caching keyed by resource
// type. This avoids repeating convention lookups (or whatever work the inner
// resolver does) on every authorization check.
//
// Use only with resolvers whose result depends solely on the resource type;
// a per-resource PolicyFactory behind the cache would have its result reused
// for every resource of that type until the entry expires.
type CachedResolver struct {
	inner Resolver
	cache map[reflect.Type]*cacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

type cacheEntry struct {
	policy    Policy
	expiresAt time.Time
}

// NewCachedResolver wraps a resolver with caching.
// ttl is how long resolved policies are cached before re-resolving.
func NewCachedResolver(inner Resolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		cache: make(map[reflect.Type]*cacheEntry),
		ttl:   ttl,
	}
}

// Policy implements Resolver, using the cache when available.
// Resolution failures are never cached.
func (r *CachedResolver) Policy(resource any) (Policy, error) {
	key := resourceType(resource)

	// Check cache first (read lock)
	r.mu.RLock()
	entry, ok := r.cache[key]
	r.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.policy, nil
	}

	// Cache miss or expired - resolve through the inner resolver
	policy, err := r.inner.Policy(resource)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = &cacheEntry{
		policy:    policy,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()

	return policy, nil
}

// Invalidate removes a resource type from the cache.
// Call this when the type's policy binding changes.
func (r *CachedResolver) Invalidate(resource any) {
	r.mu.Lock()
	delete(r.cache, resourceType(resource))
	r.mu.Unlock()
}

// InvalidateAll clears the entire cache.
func (r *CachedResolver) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[reflect.Type]*cacheEntry)
	r.mu.Unlock()
}
