package keylock

import (
	"sort"
	"sync"
)

// KeyLock serializes operations per string key. Carts are keyed by owner
// identity, so operations on carts of different owners never contend.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyLock) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyLock) Lock(key string) func() {
	m := k.get(key)
	m.Lock()
	return m.Unlock
}

// LockPair acquires both keys in sorted order to avoid deadlock when two
// callers lock the same pair from opposite ends (e.g. cart merge).
func (k *KeyLock) LockPair(a, b string) func() {
	if a == b {
		return k.Lock(a)
	}

	keys := []string{a, b}
	sort.Strings(keys)

	first := k.get(keys[0])
	second := k.get(keys[1])
	first.Lock()
	second.Lock()

	return func() {
		second.Unlock()
		first.Unlock()
	}
}
