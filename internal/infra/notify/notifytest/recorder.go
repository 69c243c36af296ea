// Package notifytest provides a notifier that keeps what it receives, for tests.
package notifytest

import (
	"context"

	"lms-admin-service/internal/app"
)

// Recorder buffers up to size notifications and drops the rest.
type Recorder struct {
	ch chan app.Notification
}

func NewRecorder(size int) *Recorder {
	return &Recorder{ch: make(chan app.Notification, size)}
}

func (r *Recorder) Notify(_ context.Context, note app.Notification) {
	select {
	case r.ch <- note:
	default:
	}
}

// Drain returns what was recorded since the last call.
func (r *Recorder) Drain() []app.Notification {
	var out []app.Notification
	for {
		select {
		case n := <-r.ch:
			out = append(out, n)
		default:
			return out
		}
	}
}
