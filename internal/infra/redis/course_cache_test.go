package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"
	"lms-admin-service/internal/infra/memory"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestCourseCacheCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	backing := &countingRepo{CourseRepository: memory.NewCourseRepository(memory.NewStaticCatalog(time.Now()).Courses)}
	repo := NewCourseCache(newClient(mr), backing, time.Minute)

	c, err := repo.Get(context.Background(), "course-1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if c.Name != "Basics of Odoo CRM" {
		t.Fatalf("unexpected course %q", c.Name)
	}
	if backing.gets != 1 {
		t.Fatalf("expected backing called once, got %d", backing.gets)
	}
	if !mr.Exists("course:course-1") {
		t.Fatalf("expected course cached under course:course-1")
	}

	// Second call should hit cache, backing not incremented.
	again, err := repo.Get(context.Background(), "course-1")
	if err != nil {
		t.Fatalf("get course 2: %v", err)
	}
	if backing.gets != 1 {
		t.Fatalf("expected cache hit, backing gets=%d", backing.gets)
	}
	if len(again.Contents) != 2 || len(again.Quiz.Questions) != 1 {
		t.Fatalf("cached course lost nested data: %+v", again)
	}
}

func TestCourseCacheSaveRefreshesEntry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	backing := &countingRepo{CourseRepository: memory.NewCourseRepository(memory.NewStaticCatalog(time.Now()).Courses)}
	repo := NewCourseCache(newClient(mr), backing, time.Minute)
	ctx := context.Background()

	c, _ := repo.Get(ctx, "course-2")
	c.Name = "Renamed"
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := repo.Get(ctx, "course-2")
	if got.Name != "Renamed" {
		t.Fatalf("expected cache refreshed, got %q", got.Name)
	}
	if backing.gets != 1 {
		t.Fatalf("expected cache hit after save, backing gets=%d", backing.gets)
	}

	stored, _ := backing.CourseRepository.Get(ctx, "course-2")
	if stored.Name != "Renamed" {
		t.Fatalf("expected backing updated, got %q", stored.Name)
	}
}

func TestCourseCacheMissingCourse(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewCourseCache(newClient(mr), memory.NewCourseRepository(nil), time.Minute)
	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if mr.Exists("course:nope") {
		t.Fatalf("missing course must not be cached")
	}
}

type countingRepo struct {
	app.CourseRepository
	gets int
}

func (r *countingRepo) Get(ctx context.Context, id string) (domain.Course, error) {
	r.gets++
	return r.CourseRepository.Get(ctx, id)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
