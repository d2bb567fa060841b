package session

import (
	"sync"
	"testing"
	"time"

	"lumiere/internal/menu"

	"github.com/pkg/errors"
)

func TestCreateAndUpdate(t *testing.T) {
	s := NewStore(time.Hour)
	id := s.Create()

	if !s.Exists(id) {
		t.Fatal("created session not found")
	}

	lamb, _ := menu.Default().Find(4)
	err := s.Update(id, func(sess *Session) error {
		sess.Cart.AddItem(lamb)
		sess.View.ItemAdded(lamb.Name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	_ = s.Update(id, func(sess *Session) error {
		if sess.Cart.Count() != 1 {
			t.Errorf("expected 1 item, got %d", sess.Cart.Count())
		}
		if sess.View.Notice == "" {
			t.Error("expected a notice")
		}
		return nil
	})
}

func TestUpdateUnknownSession(t *testing.T) {
	s := NewStore(time.Hour)
	err := s.Update("missing", func(*Session) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSweep(t *testing.T) {
	s := NewStore(time.Minute)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	stale := s.Create()
	s.now = func() time.Time { return base.Add(50 * time.Second) }
	fresh := s.Create()

	removed := s.Sweep(base.Add(90 * time.Second))
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if s.Exists(stale) || !s.Exists(fresh) {
		t.Fatal("wrong session swept")
	}
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	s := NewStore(time.Hour)
	id := s.Create()
	tart, _ := menu.Default().Find(7)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(id, func(sess *Session) error {
				sess.Cart.AddItem(tart)
				return nil
			})
		}()
	}
	wg.Wait()

	_ = s.Update(id, func(sess *Session) error {
		if sess.Cart.Len() != 1 || sess.Cart.Quantity(7) != 50 {
			t.Errorf("expected one line with quantity 50, got %+v", sess.Cart.Lines())
		}
		return nil
	})
}
