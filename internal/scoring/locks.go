package scoring

import "sync"

// matchLocker serializes operations per match. recordDelivery and undo
// read-modify-write the innings aggregates, so two requests for the same
// match must never interleave; distinct matches proceed in parallel.
type matchLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newMatchLocker() *matchLocker {
	return &matchLocker{locks: make(map[uint]*sync.Mutex)}
}

// Lock acquires the mutex for one match ID and returns its unlock func.
func (l *matchLocker) Lock(matchID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[matchID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[matchID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
