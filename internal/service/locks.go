package service

import "sync"

// keyedLocks hands out one mutex per resource id, so check-and-write
// sequences against the same session or template are serialized while
// operations on distinct resources run independently.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for the given key, creating it on first use.
// Mutexes are never evicted; the key space (session/template ids) is small.
func (k *keyedLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
