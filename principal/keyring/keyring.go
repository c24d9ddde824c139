package keyring

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kycgate/go-idclaim/principal"
)

// Resolver selects the verification key registered for an issuer
// identity. It is not part of the trust boundary: it only hands back
// verifiers that callers registered, and resolving a key still leaves the
// signature check to claim.Verify.
type Resolver interface {
	Resolve(ctx context.Context, issuer string) (principal.Verifier, bool, error)
}

// Ring is a static in-memory issuer to verifier mapping.
type Ring struct {
	mu   sync.RWMutex
	data map[string]principal.Verifier
}

func NewRing() *Ring {
	return &Ring{data: map[string]principal.Verifier{}}
}

func (r *Ring) Register(issuer string, verifier principal.Verifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[issuer] = verifier
}

func (r *Ring) Resolve(ctx context.Context, issuer string) (principal.Verifier, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[issuer]
	return v, ok, nil
}

var _ Resolver = (*Ring)(nil)

var MemoryVerifierCacheSize = 100

// CachedResolver wraps a Resolver with an in memory LRU so issuers that
// verify many claims do not hit a slow upstream resolver on every claim.
type CachedResolver struct {
	resolver Resolver
	data     *lru.Cache[string, principal.Verifier]
}

// NewCachedResolver creates an LRU-backed resolver cache. The size
// parameter controls the maximum number of verifiers that can be cached.
// Pass a value less than 1 to use the default size
// [MemoryVerifierCacheSize].
func NewCachedResolver(resolver Resolver, size int) (*CachedResolver, error) {
	if size <= 0 {
		size = MemoryVerifierCacheSize
	}
	cache, err := lru.New[string, principal.Verifier](size)
	if err != nil {
		return nil, fmt.Errorf("creating verifier LRU: %w", err)
	}
	return &CachedResolver{resolver: resolver, data: cache}, nil
}

func (c *CachedResolver) Resolve(ctx context.Context, issuer string) (principal.Verifier, bool, error) {
	if v, ok := c.data.Get(issuer); ok {
		return v, true, nil
	}
	v, ok, err := c.resolver.Resolve(ctx, issuer)
	if err != nil || !ok {
		return nil, false, err
	}
	c.data.Add(issuer, v)
	return v, true, nil
}

var _ Resolver = (*CachedResolver)(nil)
