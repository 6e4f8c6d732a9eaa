package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"codelens/internal/application"
	appanalysis "codelens/internal/application/analysis"
	"codelens/internal/config"
	domain "codelens/internal/domain/analysis"
	"codelens/internal/infra/ai/gemini"
	aopenai "codelens/internal/infra/ai/openai"
	mysqlp "codelens/internal/infra/db/mysql"
	postgresp "codelens/internal/infra/db/postgres"
	"codelens/internal/infra/httpserver"
	minioStore "codelens/internal/infra/storage"
	"codelens/internal/middleware"
)

func main() {
	// API keys live in .env during development
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// model client
	var client domain.ModelClient
	switch cfg.AI.Provider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			log.Fatal("OPENAI_API_KEY not set")
		}
		client = aopenai.NewClient(key, cfg.AI.Model, cfg.AI.MaxTokens)
	case "gemini":
		c, err := gemini.NewClient(ctx, cfg.AI.Model)
		if err != nil {
			log.Fatalf("gemini init error: %v", err)
		}
		client = c
	default:
		log.Fatalf("unknown ai provider: %q", cfg.AI.Provider)
	}

	checkers := map[string]middleware.HealthChecker{}

	// optional history database
	var repo domain.Repository
	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqlp.NewRecordRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresp.NewRecordRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "":
		// history disabled
	default:
		log.Fatalf("unknown database driver: %q", cfg.Database.Driver)
	}

	// optional reply archive
	var artifacts domain.ArtifactStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	svc := &appanalysis.Service{
		Client:    client,
		Repo:      repo,
		Artifacts: artifacts,
		Clock:     application.SystemClock{},
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Logging)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimit(cfg.Server.RateLimit.Capacity, cfg.Server.RateLimit.RefillRate))
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Server.AllowedOrigins, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls are slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s provider=%s", addr, cfg.AI.Provider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
