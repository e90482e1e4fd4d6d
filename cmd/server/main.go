package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vantageassess/internal/assessment"
	"vantageassess/internal/cache"
	"vantageassess/internal/catalog"
	"vantageassess/internal/config"
	"vantageassess/internal/model"
	"vantageassess/internal/repository"
	"vantageassess/internal/service"
	"vantageassess/internal/transport/rest"
	"vantageassess/internal/transport/ws"
	"vantageassess/internal/validator"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()
	config.LogSummary()

	// Questionnaire and scoring constants
	cat := mustCatalog(cfg.CatalogPath)
	for _, warning := range catalog.Lint(cat) {
		log.Printf("Warning: catalog: %s", warning)
	}
	scoring, err := config.LoadScoring(cfg.ScoringPath)
	if err != nil {
		log.Fatalf("Failed to load scoring config: %+v", err)
	}
	engine := assessment.NewEngine(scoring)

	v, err := validator.New()
	if err != nil {
		log.Fatal("Failed to compile bundle schema:", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	reportRepo := repository.NewReportRepo(db)
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)

	sessionSvc := service.NewSessionService(cat, engine, sessionCache, reportRepo)
	reportSvc := service.NewReportService(cat, engine, reportRepo, v)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		SessionService:     sessionSvc,
		ReportService:      reportSvc,
		WSHub:              wsHub,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/catalog")
		log.Println("  POST /v1/sessions")
		log.Println("  PUT  /v1/sessions/{id}/answers/{category}/{questionId}")
		log.Println("  POST /v1/sessions/{id}/next|back|finish")
		log.Println("  GET  /v1/reports/{id}[/export]")
		log.Println("  POST /v1/reports/verify")
		log.Println("  POST /v1/evaluate")
		log.Println("  WS   /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func mustCatalog(path string) *model.Catalog {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			log.Fatalf("Embedded catalog is invalid: %+v", err)
		}
		log.Printf("Loaded embedded catalog (%d sections)", cat.SectionCount())
		return cat
	}
	cat, err := catalog.Load(path)
	if err != nil {
		log.Fatalf("Failed to load catalog %s: %+v", path, err)
	}
	log.Printf("Loaded catalog %s (%d sections)", path, cat.SectionCount())
	return cat
}
