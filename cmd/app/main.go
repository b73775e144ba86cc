package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"harvest/cmd"
	httpadapter "harvest/internal/adapters/in/http"
	"harvest/internal/adapters/out/artifact"
	"harvest/internal/adapters/out/postgres"
	"harvest/internal/adapters/out/rabbitmq"
	"harvest/internal/core/ports"
	"harvest/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := postgres.Open(configs.DatabaseSettings(), logger)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = postgres.AutoMigrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	predictor := loadPredictor(configs.CostModelPath, logger)

	publisher, closePublisher := connectPublisher(configs, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(configs, db, publisher, predictor, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer app.Close()

	logger.Info("Cost estimator ready", "strategy", string(app.CostStrategy()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.SeedDemoUsers {
		if err = app.SeedDemoUsers(ctx); err != nil {
			log.Fatalf("Error seeding demo users: %v", err)
		}
	}

	jobManager := jobs.NewJobManager(app.CreateListOpenJobsQueryHandler(), configs.BacklogReportSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return config
}

// loadPredictor returns nil when no trained model is present. A model that
// exists but cannot be read stops the process.
func loadPredictor(path string, logger *slog.Logger) ports.CostPredictor {
	model, err := artifact.Load(path)
	if err != nil {
		log.Fatalf("Error loading cost model: %v", err)
	}
	if model == nil {
		logger.Info("No trained cost model found, using formula", "path", path)
		return nil
	}
	return model
}

// connectPublisher returns a nil publisher when no broker is configured.
func connectPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL not set, job events are not published")
		return nil, func() {}
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(conn, configs.RabbitMQExchange)
	if err != nil {
		_ = conn.Close()
		log.Fatalf("Error creating RabbitMQ publisher: %v", err)
	}

	return publisher, func() {
		_ = publisher.Close()
		_ = conn.Close()
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	server := httpadapter.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateAcceptJobCommandHandler(),
		app.CreateCompleteJobCommandHandler(),
		app.CreateListOpenJobsQueryHandler(),
		app.CreateListJobViewsQueryHandler(),
		app.CreateGetJobViewQueryHandler(),
		app.CreateEstimateCostQueryHandler(),
		logger,
	)
	rateLimiter, closeRateLimiter := cmd.NewRateLimiter(configs, logger)
	defer func() {
		if err := closeRateLimiter(); err != nil {
			logger.Error("Error closing Redis client", "error", err)
		}
	}()
	server.Register(e, rateLimiter)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
