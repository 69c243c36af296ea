package notifytest

import (
	"context"
	"testing"

	"lms-admin-service/internal/app"
)

func TestRecorderDropsWhenFull(t *testing.T) {
	r := NewRecorder(1)
	r.Notify(context.Background(), app.Notification{Message: "one"})
	r.Notify(context.Background(), app.Notification{Message: "two"})

	got := r.Drain()
	if len(got) != 1 || got[0].Message != "one" {
		t.Fatalf("expected only the first notification, got %v", got)
	}
	if again := r.Drain(); len(again) != 0 {
		t.Fatalf("drain should empty the recorder, got %v", again)
	}
}
