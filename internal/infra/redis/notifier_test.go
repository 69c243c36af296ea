package redis

import (
	"context"
	"testing"
	"time"

	"lms-admin-service/internal/app"

	miniredis "github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"
)

func TestNotifierPublishesJSON(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	notifier := NewNotifier(newClient(mr), "", zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	notes, err := notifier.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	notifier.Notify(ctx, app.Notification{Kind: "success", Message: "Course published!", CourseID: "course-1"})

	select {
	case got := <-notes:
		if got.Message != "Course published!" || got.CourseID != "course-1" {
			t.Fatalf("unexpected notification %+v", got)
		}
	case <-ctx.Done():
		t.Fatalf("timed out waiting for notification")
	}
}
