package session

import (
	"sync"
	"testing"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func TestPutAndAcquire(t *testing.T) {
	store := NewStore()
	store.Put(&domain.Session{Token: "t1", Status: domain.StatusInProgress})

	sess, release, err := store.Acquire("t1")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()
	if sess.Token != "t1" || sess.Status != domain.StatusInProgress {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestAcquireUnknownToken(t *testing.T) {
	store := NewStore()

	_, _, err := store.Acquire("missing")
	if !domain.IsKind(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestPutReplacesEntry(t *testing.T) {
	store := NewStore()
	store.Put(&domain.Session{Token: "t1", Branch: "old"})
	store.Put(&domain.Session{Token: "t1", Branch: "new"})

	sess, release, err := store.Acquire("t1")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()
	if sess.Branch != "new" {
		t.Fatalf("expected replaced session, got branch %q", sess.Branch)
	}
	if store.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", store.Len())
	}
}

func TestAcquireSerializesMutations(t *testing.T) {
	store := NewStore()
	store.Put(&domain.Session{Token: "t1"})

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, release, err := store.Acquire("t1")
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			sess.Asked++
			release()
		}()
	}
	wg.Wait()

	sess, release, err := store.Acquire("t1")
	if err != nil {
		t.Fatalf("final acquire: %v", err)
	}
	defer release()
	if sess.Asked != workers {
		t.Fatalf("expected %d serialized increments, got %d", workers, sess.Asked)
	}
}
