package services

import "sync"

// enrollmentLocks hands out one mutex per enrollment ID so that
// aggregate recomputation is serialized per enrollment while writes to
// different enrollments proceed in parallel. Entries are never evicted;
// one idle mutex per enrollment touched over the process lifetime.
type enrollmentLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newEnrollmentLocks() *enrollmentLocks {
	return &enrollmentLocks{locks: make(map[uint]*sync.Mutex)}
}

// lock acquires the mutex for the given enrollment and returns it so
// the caller can defer the unlock.
func (l *enrollmentLocks) lock(enrollmentID uint) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[enrollmentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[enrollmentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
