package tools

import (
	"fmt"
	"sync"
	"testing"
)

func TestInstanceSet_AddRemove(t *testing.T) {
	s := newInstanceSet()

	id := s.add("", "truth")
	if id == "" {
		t.Fatal("generated id must be non-empty")
	}
	if !s.has(id) {
		t.Errorf("added id not tracked: %q", id)
	}

	explicit := s.add("episode-1", "")
	if explicit != "episode-1" {
		t.Errorf("explicit id not returned: got %q", explicit)
	}
	if s.len() != 2 {
		t.Errorf("len: got %d want 2", s.len())
	}

	s.remove(id)
	if s.has(id) {
		t.Errorf("removed id still tracked: %q", id)
	}
	s.remove("never-added") // no-op
	if s.len() != 1 {
		t.Errorf("len after removals: got %d want 1", s.len())
	}
}

func TestInstanceSet_ConcurrentAdds(t *testing.T) {
	s := newInstanceSet()
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.add(fmt.Sprintf("id-%d", i), "")
		}(i)
	}
	wg.Wait()

	if s.len() != n {
		t.Errorf("len: got %d want %d", s.len(), n)
	}
}
