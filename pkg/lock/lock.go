// Package lock provides a try-lock used to keep batch jobs from running
// concurrently, either inside one process or across replicas through Redis.
package lock

import (
	"context"
	"errors"
	"sync"
)

// ErrLocked is returned by Acquire when another holder has the key
var ErrLocked = errors.New("lock is held by another worker")

// Locker acquires a named lock without waiting. The returned release func
// must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// LocalLocker serialises holders within the current process
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]bool)}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[key] {
		return nil, ErrLocked
	}
	l.held[key] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}
