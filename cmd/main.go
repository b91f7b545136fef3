package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/napmap/internal/config"
	v1 "github.com/shenikar/napmap/internal/handler/http/v1"
	"github.com/shenikar/napmap/internal/loader"
	"github.com/shenikar/napmap/internal/mapstate"
	"github.com/shenikar/napmap/internal/metrics"
	"github.com/shenikar/napmap/internal/repository"
	"github.com/shenikar/napmap/internal/service"
	"github.com/shenikar/napmap/internal/webhook"
	"github.com/shenikar/napmap/pkg/logger"
	"github.com/shenikar/napmap/pkg/postgres"
	redisclient "github.com/shenikar/napmap/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/napmap/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title NAP Map API
// @version 1.0
// @description NAP map server: marker groups, filters, search and boundary layers.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func mapConfig(cfg *config.Config) mapstate.Config {
	mc := mapstate.DefaultConfig()
	mc.Expansion = mapstate.ExpansionConfig{
		Offset:          cfg.ExpandOffset,
		CollapsedRadius: cfg.CollapsedRadius,
		ExpandedRadius:  cfg.ExpandedRadius,
	}
	mc.LocateZoom = cfg.LocateZoom
	mc.PulseDuration = cfg.PulseDuration
	return mc
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	// Источник точек: PostgreSQL, если задан DATABASE_URL, иначе CSV
	var points loader.PointSource = loader.NewCSVPointSource(os.DirFS(cfg.DataDir), cfg.PointsFile)
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		points = repository.NewPointRepository(dbpool)
	}

	// Издатель пакетов отрисовки: Redis, если задан REDIS_ADDR
	var publisher webhook.DrawPublisher = webhook.NoopPublisher{}
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisDrawPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		drawWorker := webhook.NewDrawWorker(redisClient, log, cfg)
		drawWorker.Start(ctx)
	}

	// Инициализация сервисов
	state := mapstate.New(mapConfig(cfg))
	mapService := service.NewMapService(state, publisher, m, log, func(sink loader.Sink) service.DatasetLoader {
		return loader.New(os.DirFS(cfg.DataDir), cfg.ManifestFile, points, sink, m, log)
	})

	// Первичная загрузка данных не блокирует запуск сервера
	go func() {
		if err := mapService.Reload(ctx); err != nil {
			log.WithError(err).Error("Initial dataset load failed")
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(mapService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(m.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
