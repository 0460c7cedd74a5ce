package service

import "sync"

// accountLocks hands out one mutex per user id so mutations on the same
// account serialize while different accounts proceed in parallel. Locks are
// never released back; the set of active users is small enough that the map
// just grows with the user base.
type accountLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[int64]*sync.Mutex)}
}

func (a *accountLocks) lock(userID int64) *sync.Mutex {
	a.mu.Lock()
	l, ok := a.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		a.locks[userID] = l
	}
	a.mu.Unlock()

	l.Lock()
	return l
}
