package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	cancelBookingHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/create_booking"
	createResourceHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/create_resource"
	getBookingHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/get_booking"
	getFreeResourcesHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/get_free_resources"
	getResourceBookingsHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/get_resource_bookings"
	listResourcesHandler "github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers/list_resources"
	"github.com/m04kA/SMC-ResourceScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-ResourceScheduler/internal/config"
	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
	resourceRepo "github.com/m04kA/SMC-ResourceScheduler/internal/infra/storage/resource"
	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
	bookingsService "github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ResourceScheduler/internal/service/catalog"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
	createBookingUC "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/create_booking"
	getFreeResourcesUC "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/get_free_resources"
	"github.com/m04kA/SMC-ResourceScheduler/pkg/logger"
	"github.com/m04kA/SMC-ResourceScheduler/pkg/metrics"
)

func main() {
	app := &cli.App{
		Name:  "resource-scheduler",
		Usage: "бронирование интервалов на пуле взаимозаменяемых ресурсов",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "путь к TOML-конфигурации",
				EnvVars: []string{"SCHEDULER_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("resource-scheduler: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-ResourceScheduler...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		observer         engine.Observer
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		observer = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Пул ресурсов: из конфига или из каталога в БД
	pool := resources.NewPool()
	var catalogRepo catalogService.ResourceRepository

	switch cfg.Resources.Source {
	case domain.ResourceSourceDatabase:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := resourceRepo.NewRepository(db)
		names, err := repo.ListNames(context.Background())
		if err != nil {
			return fmt.Errorf("failed to load resources from database: %w", err)
		}
		for _, name := range names {
			pool.Add(name)
		}
		catalogRepo = repo

	default:
		for _, name := range cfg.Resources.Names {
			pool.Add(name)
		}
	}
	log.Info("Resource pool initialized: source=%s, resources=%d", cfg.Resources.Source, pool.Len())

	// Движок бронирования
	bookingEngine := engine.NewEngine(pool, observer)

	// Публикация событий
	var publisher interface {
		Publish(ctx context.Context, event events.Event) error
		Close() error
	} = events.NopPublisher{}
	if cfg.Events.Enabled {
		publisher = events.NewPublisher(
			cfg.Events.Brokers,
			cfg.Events.Topic,
			time.Duration(cfg.Events.BatchTimeoutMs)*time.Millisecond,
			log,
		)
		log.Info("Event publishing enabled (brokers=%v, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingEngine, pool, publisher, log)
	catalogSvc := catalogService.NewService(pool, catalogRepo, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingEngine, pool, publisher, log)
	getFreeResourcesUseCase := getFreeResourcesUC.NewUseCase(bookingEngine, pool, log)

	// Инициализируем handlers
	createResource := createResourceHandler.NewHandler(catalogSvc, log)
	listResources := listResourcesHandler.NewHandler(catalogSvc, log)
	getResourceBookings := getResourceBookingsHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(bookingSvc, log)
	getFreeResources := getFreeResourcesHandler.NewHandler(getFreeResourcesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Ресурсы ---
	api.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/bookings", getResourceBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/free-resources", getFreeResources.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (active bookings dropped: %d)", bookingEngine.ActiveCount())
	return nil
}

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
