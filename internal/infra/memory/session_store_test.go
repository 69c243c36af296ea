package memory

import (
	"context"
	"testing"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("course-1")
	if session == nil {
		t.Fatalf("expected session")
	}
	if again := store.GetOrCreate("course-1"); again != session {
		t.Fatalf("expected the same session on second call")
	}
	if _, ok := store.Get("course-1"); !ok {
		t.Fatalf("expected session present")
	}

	store.DeleteIfIdle("course-1")
	if _, ok := store.Get("course-1"); ok {
		t.Fatalf("expected idle session removed")
	}

	store.DeleteIfIdle("missing")
}

func TestSessionStoreOpenCoursesSkipsIdle(t *testing.T) {
	store := NewSessionStore()
	_ = store.GetOrCreate("course-1")

	open, err := store.OpenCourses(context.Background())
	if err != nil {
		t.Fatalf("open courses: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("a session nobody opened or watches is idle, got %v", open)
	}
}
