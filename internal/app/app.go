package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"savant-seeker/backend/internal/api"
	"savant-seeker/backend/internal/config"
	"savant-seeker/backend/internal/database"
	"savant-seeker/backend/internal/llm"
	"savant-seeker/backend/internal/persistence"
	"savant-seeker/backend/internal/repository"
	"savant-seeker/backend/internal/service"
	"savant-seeker/backend/internal/store"
)

const shutdownTimeout = 10 * time.Second

// App holds the wired server and the resources it must release on exit.
type App struct {
	Server  *http.Server
	Auth    *service.AuthService
	closers []io.Closer
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// NewApp opens the store backend, restores the saved session and builds the HTTP server.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	repo, err := app.openRepository(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	provider, err := llm.NewGeminiProvider(ctx, llm.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	chats := store.New()
	adapter := persistence.NewAdapter(repo, cfg.KeyPrefix)
	chats.AddListener(adapter)

	settingsService := service.NewSettingsService()
	memoryService := service.NewMemoryService(adapter)
	lifemapService := service.NewLifemapService(adapter)
	chatService := service.NewChatService(chats)
	session := service.NewSessionController(chats, provider, settingsService, memoryService, service.GenerationConfig{
		ChatModel:  cfg.ChatModel,
		ImageModel: cfg.ImageModel,
		ImageCount: cfg.ImageCount,
	})
	app.Auth = service.NewAuthService(chats, adapter, session, settingsService, memoryService, lifemapService)
	app.Auth.Restore(ctx)
	if user, err := app.Auth.CurrentUser(); err == nil {
		slog.Info("Restored saved session", "user", user.Email, "chats", len(chats.List()))
	}

	router := api.NewRouter(app.Auth, api.Handlers{
		Chat:    api.NewChatHandler(chatService, session),
		Account: api.NewAccountHandler(app.Auth, settingsService, memoryService),
		Lifemap: api.NewLifemapHandler(lifemapService),
		Tools:   api.NewToolsHandler(nil, ""),
	})

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

// Serve runs the server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases the store backend.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			slog.Error("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) openRepository(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, db)
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return repository.NewSQLiteRepository(db), nil
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		a.closers = append(a.closers, rdb)
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		return repository.NewRedisRepository(rdb), nil
	case config.BackendMemory:
		slog.Warn("Using the in-memory store; nothing survives a restart.")
		return repository.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
