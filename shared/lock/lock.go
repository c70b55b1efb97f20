package lock

import "sync"

// Keyed serializes critical sections per key. Two callers holding
// different keys proceed concurrently, two callers on the same key
// queue behind each other.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{
		locks: map[string]*entry{},
	}
}

// Lock acquires the lock for the given key, blocking until it is free.
func (k *Keyed) Lock(key string) {
	k.mu.Lock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}

	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for the given key. The entry is dropped once
// no goroutine is waiting on it.
func (k *Keyed) Unlock(key string) {
	k.mu.Lock()

	e, ok := k.locks[key]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
	}

	k.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
