package bot

import (
	"testing"
	"time"

	"zadachnik/models"
)

func TestSessionStorePutGetDelete(t *testing.T) {
	s := NewSessionStore()

	if _, ok := s.Get(1); ok {
		t.Fatal("Get() on empty store returned a session")
	}

	s.Put(1, models.Session{Stage: models.StageAwaitingText})
	sess, ok := s.Get(1)
	if !ok {
		t.Fatal("Get() did not find stored session")
	}
	if sess.Stage != models.StageAwaitingText {
		t.Errorf("Stage = %q, want %q", sess.Stage, models.StageAwaitingText)
	}

	// sessions are per user
	if _, ok := s.Get(2); ok {
		t.Error("Get() for another user returned a session")
	}

	s.Delete(1)
	if _, ok := s.Get(1); ok {
		t.Error("Get() after Delete() returned a session")
	}
}

func TestSessionStoreTTL(t *testing.T) {
	s := NewSessionStore()
	base := time.Now()
	s.now = func() time.Time { return base }

	s.Put(1, models.Session{Stage: models.StageSelectingStatus, Draft: models.Draft{Text: "old"}})

	s.now = func() time.Time { return base.Add(sessionTTL - time.Minute) }
	if _, ok := s.Get(1); !ok {
		t.Fatal("session expired before TTL")
	}

	s.now = func() time.Time { return base.Add(sessionTTL + time.Minute) }
	if _, ok := s.Get(1); ok {
		t.Fatal("session survived past TTL")
	}
}
