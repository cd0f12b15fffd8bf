package asyncdata

import (
	"context"
	"sync"
)

// KeyedProducer fetches the value of one key.
type KeyedProducer[T any] func(ctx context.Context, key string) (T, error)

// Keyed is a resource bound to a key such as a slug. Changing the key
// re-fetches, and completions for superseded keys are discarded so the newest
// key always wins.
type Keyed[T any] struct {
	*Resource[T]

	mu  sync.RWMutex
	key string
	ctx context.Context
}

// NewKeyed builds a latest-only resource for key. Options apply as for New;
// the context given by WithContext is also used by SetKey.
func NewKeyed[T any](key string, producer KeyedProducer[T], opts ...Option) *Keyed[T] {
	k := &Keyed[T]{key: key, ctx: newConfig(opts).ctx}
	k.Resource = New[T](func(ctx context.Context) (T, error) {
		if producer == nil {
			var zero T
			return zero, errNilProducer
		}
		return producer(ctx, k.Key())
	}, append(opts[:len(opts):len(opts)], WithLatestOnly())...)
	return k
}

// Key returns the current key.
func (k *Keyed[T]) Key() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.key
}

// SetKey swaps the key and starts a fetch when it changed. It reports
// whether a fetch was started.
func (k *Keyed[T]) SetKey(key string) bool {
	k.mu.Lock()
	if k.key == key {
		k.mu.Unlock()
		return false
	}
	k.key = key
	k.mu.Unlock()

	k.Start(k.ctx)
	return true
}
