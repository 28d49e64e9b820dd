package tools

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// instanceState is the per-instance bookkeeping a tool may keep between
// Create and Release. The verification tool stores nothing beyond this;
// the map exists so future tools can carry per-episode caches.
type instanceState struct {
	groundTruth string
	createdAt   time.Time
}

// instanceSet tracks live instance-ids for one tool. Guarded by a mutex:
// the hosting runtime may drive different instance-ids from different
// goroutines.
type instanceSet struct {
	mu sync.Mutex
	m  map[string]instanceState
}

func newInstanceSet() *instanceSet {
	return &instanceSet{m: map[string]instanceState{}}
}

// add records an instance and returns its id, generating a fresh UUID when
// id is empty. Callers own uniqueness of explicit ids.
func (s *instanceSet) add(id, groundTruth string) string {
	if id == "" {
		id = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = instanceState{groundTruth: groundTruth, createdAt: time.Now()}
	return id
}

func (s *instanceSet) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

func (s *instanceSet) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[id]
	return ok
}

func (s *instanceSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
