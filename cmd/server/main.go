package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gatherly/api/internal/config"
	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/handler"
	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/repository"
	"github.com/gatherly/api/internal/service"
	"github.com/gatherly/api/pkg/jwt"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging: colored console output during
	// development, JSON everywhere else
	var logHandler slog.Handler
	if cfg.IsDevelopment() {
		logHandler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(logHandler))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	attendingRepo := repository.NewAttendingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	postService := service.NewPostService(postRepo, commentRepo, likeRepo, userRepo)
	eventService := service.NewEventService(eventRepo, attendingRepo, invoiceRepo, userRepo)
	attendingService := service.NewAttendingService(eventRepo, attendingRepo, invoiceRepo, userRepo)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	eventHandler := handler.NewEventHandler(eventService)
	attendingHandler := handler.NewAttendingHandler(attendingService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Protected endpoints
	authMiddleware := middleware.Auth(jwtService)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	mux.Handle("GET /v1/auth/me", protected(authHandler.Me))
	mux.Handle("GET /v1/auth/me/invoices", protected(eventHandler.ListMyInvoices))

	// Post endpoints
	mux.Handle("GET /v1/posts", protected(postHandler.ListPosts))
	mux.Handle("POST /v1/posts", protected(postHandler.CreatePost))
	mux.Handle("GET /v1/posts/{postId}", protected(postHandler.GetPost))
	mux.Handle("PATCH /v1/posts/{postId}", protected(postHandler.UpdatePost))
	mux.Handle("DELETE /v1/posts/{postId}", protected(postHandler.DeletePost))
	mux.Handle("POST /v1/posts/{postId}/comments", protected(postHandler.CreateComment))
	mux.Handle("PATCH /v1/posts/{postId}/comments/{commentId}", protected(postHandler.UpdateComment))
	mux.Handle("DELETE /v1/posts/{postId}/comments/{commentId}", protected(postHandler.DeleteComment))
	mux.Handle("POST /v1/posts/{postId}/likes", protected(postHandler.LikePost))
	mux.Handle("DELETE /v1/posts/{postId}/likes/{likeId}", protected(postHandler.UnlikePost))

	// Event endpoints (create/update/delete are admin-only, enforced in the service)
	mux.Handle("GET /v1/events", protected(eventHandler.ListEvents))
	mux.Handle("POST /v1/events", protected(eventHandler.CreateEvent))
	mux.Handle("GET /v1/events/{eventId}", protected(eventHandler.GetEvent))
	mux.Handle("PATCH /v1/events/{eventId}", protected(eventHandler.UpdateEvent))
	mux.Handle("DELETE /v1/events/{eventId}", protected(eventHandler.DeleteEvent))
	mux.Handle("GET /v1/events/{eventId}/invoices", protected(eventHandler.ListEventInvoices))
	mux.Handle("GET /v1/invoices/{invoiceId}", protected(eventHandler.GetInvoice))

	// Attending endpoints
	mux.Handle("GET /v1/events/{eventId}/attending", protected(attendingHandler.ListAttending))
	mux.Handle("POST /v1/events/{eventId}/attending", protected(attendingHandler.CreateAttending))
	mux.Handle("GET /v1/events/{eventId}/attending/{attendingId}", protected(attendingHandler.GetAttending))
	mux.Handle("PATCH /v1/events/{eventId}/attending/{attendingId}", protected(attendingHandler.UpdateAttending))
	mux.Handle("DELETE /v1/events/{eventId}/attending/{attendingId}", protected(attendingHandler.DeleteAttending))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		metrics.Instrument,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
