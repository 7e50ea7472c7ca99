package impl

import "sync"

// keyedGuard is a per-key "currently running" flag. The persisted schedule
// record is the real idempotency barrier; this only stops concurrent
// invocations for the same (owner, trigger, day) from racing the
// read-check-write sequence inside one process.
type keyedGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newKeyedGuard() *keyedGuard {
	return &keyedGuard{held: make(map[string]struct{})}
}

// TryAcquire claims the key, returning false when another invocation holds it.
func (g *keyedGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return false
	}
	g.held[key] = struct{}{}

	return true
}

// Release frees the key.
func (g *keyedGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.held, key)
}
