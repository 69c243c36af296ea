package cli

import (
	"context"
	"time"

	"lms-admin-service/internal/config"
	"lms-admin-service/internal/infra/memory"
	"lms-admin-service/internal/infra/postgres"
	"lms-admin-service/internal/logger"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NewSeedCmd loads the demo catalog into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo courses and participants into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := runMigrations(cmd.Context(), cfg, log); err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg, log)
		},
	}
}

// runSeed writes courses (pgx) and participants (bun) concurrently; existing
// rows are left untouched.
func runSeed(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	catalog := memory.NewStaticCatalog(time.Now())

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	db, err := openBunDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := postgres.NewCourseStore(pool).Seed(gctx, catalog.Courses)
		if err != nil {
			return err
		}
		log.Info("courses seeded", zap.Int("inserted", n))
		return nil
	})
	g.Go(func() error {
		if err := postgres.NewParticipantStore(db).Seed(gctx, catalog.Participants); err != nil {
			return err
		}
		log.Info("participants seeded", zap.Int("count", len(catalog.Participants)))
		return nil
	})
	return g.Wait()
}
