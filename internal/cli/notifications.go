package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/config"
	infraredis "lms-admin-service/internal/infra/redis"
	"lms-admin-service/internal/logger"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewNotificationsCmd follows the notifications every instance publishes to Redis.
func NewNotificationsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Print admin notifications published on the Redis channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Redis.Addr == "" {
				return errors.New("redis.addr is not configured")
			}
			log, err := logger.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			client := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer client.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchNotifications(ctx, infraredis.NewNotifier(client, cfg.Redis.Channel, log), cmd.OutOrStdout())
		},
	}
}

type notificationSource interface {
	Subscribe(ctx context.Context) (<-chan app.Notification, error)
}

// watchNotifications writes one JSON line per notification until ctx is done.
func watchNotifications(ctx context.Context, src notificationSource, out io.Writer) error {
	notes, err := src.Subscribe(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	for note := range notes {
		if err := enc.Encode(note); err != nil {
			return err
		}
	}
	return nil
}
