package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"
	"lms-admin-service/internal/infra/memory"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)

	_ = store.GetOrCreate("course-1")
	if !mr.Exists("course:session:course-1") {
		t.Fatalf("expected redis key to be set")
	}

	open, err := store.OpenCourses(context.Background())
	if err != nil {
		t.Fatalf("open courses: %v", err)
	}
	if len(open) != 1 || open[0] != "course-1" {
		t.Fatalf("expected [course-1], got %v", open)
	}

	store.DeleteIfIdle("course-1")
	if mr.Exists("course:session:course-1") {
		t.Fatalf("expected redis key to be removed")
	}
}

func TestSessionStoreKeyExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)

	_ = store.GetOrCreate("course-1")
	mr.FastForward(2 * time.Minute)
	if mr.Exists("course:session:course-1") {
		t.Fatalf("expected liveness key to expire")
	}
	if _, ok := store.Get("course-1"); !ok {
		t.Fatalf("local session should survive key expiry")
	}
}

func TestSessionStoreKeyLivesWhileCourseIsEdited(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)
	service := app.NewCourseService(
		memory.NewCourseRepository(memory.NewStaticCatalog(time.Now()).Courses),
		store, nil, nil, app.CourseServiceConfig{},
	)
	ctx := context.Background()

	if _, err := service.OpenCourse(ctx, "course-1"); err != nil {
		t.Fatalf("open course: %v", err)
	}
	for i := 0; i < 3; i++ {
		mr.FastForward(40 * time.Second)
		desc := fmt.Sprintf("edit %d", i)
		if _, err := service.UpdateCourse(ctx, "course-1", domain.CourseUpdate{Description: domain.Set(desc)}); err != nil {
			t.Fatalf("update course: %v", err)
		}
	}

	open, err := service.OpenCourses(ctx)
	if err != nil {
		t.Fatalf("open courses: %v", err)
	}
	if len(open) != 1 || open[0] != "course-1" {
		t.Fatalf("expected course-1 still open, got %v", open)
	}
}

func TestSessionStoreTouchRecreatesExpiredKey(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	_ = store.GetOrCreate("course-1")
	mr.FastForward(2 * time.Minute)

	store.Touch("course-1")
	if !mr.Exists("course:session:course-1") {
		t.Fatalf("expected touch to restore the liveness key")
	}

	store.Touch("course-9")
	if mr.Exists("course:session:course-9") {
		t.Fatalf("touch must not mark courses this instance does not hold")
	}
}
