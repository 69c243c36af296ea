package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/config"
	"lms-admin-service/internal/infra/memory"
	"lms-admin-service/internal/infra/notify"
	"lms-admin-service/internal/infra/postgres"
	infraredis "lms-admin-service/internal/infra/redis"
	"lms-admin-service/internal/logger"
	transport "lms-admin-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the admin API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Postgres.URL != "" {
		if err := runMigrations(ctx, cfg, log); err != nil {
			return err
		}
		if cfg.Catalog.Seed {
			if err := runSeed(ctx, cfg, log); err != nil {
				return err
			}
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	catalog := memory.NewStaticCatalog(time.Now())

	var courses app.CourseRepository = memory.NewCourseRepository(catalog.Courses)
	var participantLoader memory.ParticipantLoader = memory.NewStaticParticipantLoader(catalog.Participants)
	if pool != nil {
		courses = postgres.NewCourseStore(pool)
		db, err := openBunDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		participantLoader = postgres.NewParticipantStore(db)
	}
	if redisClient != nil {
		courses = infraredis.NewCourseCache(redisClient, courses, redisTTL)
	}
	participants := memory.NewParticipantRepository(participantLoader, config.TTLDuration(cfg.Catalog.TTL, time.Minute))

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = infraredis.NewSessionStore(redisClient, redisTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	notifier := notify.Fanout{notify.NewLogNotifier(log)}
	if redisClient != nil {
		notifier = append(notifier, infraredis.NewNotifier(redisClient, cfg.Redis.Channel, log))
	}

	persons := cfg.ResponsiblePersons
	if len(persons) == 0 {
		persons = memory.DefaultResponsiblePersons
	}

	courseService := app.NewCourseService(courses, sessions, notifier, log.Named("courses"), app.CourseServiceConfig{
		Origin:  cfg.Server.Origin,
		Rewards: cfg.Quiz.Rewards,
	})
	reportingService := app.NewReportingService(participants)
	settingsService := app.NewSettingsService(cfg.Settings, persons)

	router := transport.NewRouter(log, transport.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     config.TTLDuration(cfg.RateLimit.Window, time.Minute),
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	},
		transport.NewWSHandler(courseService, log),
		transport.NewCourseHandler(courseService, log),
		transport.NewReportingHandler(reportingService, log),
		transport.NewSettingsHandler(settingsService, log),
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting lms admin service", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
