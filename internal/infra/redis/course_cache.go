package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CourseCache is a read-through Redis cache in front of another course repository.
// Each course is stored as JSON: SET course:{courseID} {json} EX ttl.
// Writes go to the backing repository first and then refresh the cached copy.
type CourseCache struct {
	client  *redis.Client
	backing app.CourseRepository
	ttl     time.Duration
	sf      singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewCourseCache(client *redis.Client, backing app.CourseRepository, ttl time.Duration) *CourseCache {
	return &CourseCache{
		client:  client,
		backing: backing,
		ttl:     ttl,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// List always reads the backing store; the catalog order lives there.
func (r *CourseCache) List(ctx context.Context) ([]domain.Course, error) {
	return r.backing.List(ctx)
}

func (r *CourseCache) Get(ctx context.Context, id string) (domain.Course, error) {
	if c, ok := r.cached(ctx, id); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(id, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if c, ok := r.cached(ctx, id); ok {
			return c, nil
		}
		c, err := r.backing.Get(ctx, id)
		if err != nil {
			return domain.Course{}, err
		}
		r.store(ctx, c)
		return c, nil
	})
	if err != nil {
		return domain.Course{}, err
	}
	return result.(domain.Course).Clone(), nil
}

func (r *CourseCache) Create(ctx context.Context, c domain.Course) error {
	if err := r.backing.Create(ctx, c); err != nil {
		return err
	}
	r.store(ctx, c)
	return nil
}

func (r *CourseCache) Save(ctx context.Context, c domain.Course) error {
	if err := r.backing.Save(ctx, c); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			_ = r.client.Del(ctx, r.key(c.ID)).Err()
		}
		return err
	}
	r.store(ctx, c)
	return nil
}

func (r *CourseCache) cached(ctx context.Context, id string) (domain.Course, bool) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		return domain.Course{}, false
	}
	var c domain.Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Course{}, false
	}
	return c, true
}

// store is best effort; a failed write only costs a later cache miss.
func (r *CourseCache) store(ctx context.Context, c domain.Course) {
	raw, err := json.Marshal(c)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, r.key(c.ID), raw, r.ttlWithJitter()).Err()
}

func (r *CourseCache) key(id string) string {
	return fmt.Sprintf("course:%s", id)
}

func (r *CourseCache) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
