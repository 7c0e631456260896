package session

import (
	"sync"
	"time"
)

// revocations remembers signed-out session IDs until their tokens would have
// expired anyway.
type revocations struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func newRevocations() *revocations {
	return &revocations{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

// revoke marks id as signed out until until.
func (r *revocations) revoke(id string, until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for sid, exp := range r.expires {
		if !exp.After(now) {
			delete(r.expires, sid)
		}
	}
	r.expires[id] = until
}

// revoked reports whether id was signed out and its token is still live.
func (r *revocations) revoked(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.expires[id]
	if !ok {
		return false
	}
	if !exp.After(r.now()) {
		delete(r.expires, id)
		return false
	}
	return true
}

func (r *revocations) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.expires)
}
