package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskflow/internal/quickadd"
)

// sessionStore holds batch sessions in an expiring LRU. Drafts are
// deliberately not persisted: dismissal, eviction or expiry discards
// them, mirroring the client-side behavior of closing the batch panel.
type sessionStore struct {
	// mu serializes session mutations; the LRU itself is safe for
	// concurrent access but read-modify-write of a session is not.
	mu    sync.Mutex
	cache *expirable.LRU[string, *quickadd.BatchSession]
}

func newSessionStore(capacity int, ttl time.Duration) *sessionStore {
	if capacity <= 0 {
		capacity = 256
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &sessionStore{
		cache: expirable.NewLRU[string, *quickadd.BatchSession](capacity, nil, ttl),
	}
}

func (s *sessionStore) get(id string) (*quickadd.BatchSession, bool) {
	return s.cache.Get(id)
}

func (s *sessionStore) put(sess *quickadd.BatchSession) {
	s.cache.Add(sess.ID, sess)
}

func (s *sessionStore) delete(id string) {
	s.cache.Remove(id)
}
