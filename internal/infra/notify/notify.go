package notify

import (
	"context"

	"lms-admin-service/internal/app"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notify")}
}

func (n *LogNotifier) Notify(_ context.Context, note app.Notification) {
	n.logger.Info(note.Message,
		zap.String("kind", note.Kind),
		zap.String("course_id", note.CourseID),
		zap.String("url", note.URL),
	)
}

// Fanout delivers every notification to each of its notifiers in order.
type Fanout []app.Notifier

func (f Fanout) Notify(ctx context.Context, note app.Notification) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, note)
		}
	}
}
