package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"postcard/app/config"
	"postcard/app/controllers"
	"postcard/app/locale"
	"postcard/app/logging"
	"postcard/app/repositories"
	"postcard/app/repositories/memory"
	"postcard/app/repositories/sqlite"
	"postcard/app/routes"
	"postcard/app/services"
)

// App is a wired post card server.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Handler http.Handler
	closers []func() error
}

// NewApp opens the configured store, loads the seed posts and builds the
// router.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Logger: logger}
	postRepo, commentRepo, err := app.openStore()
	if err != nil {
		return nil, err
	}

	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	if cfg.PostsFile != "" {
		n, err := postService.LoadPostsFile(cfg.PostsFile)
		if err != nil {
			app.Close()
			return nil, err
		}
		logger.Info("posts loaded", "file", cfg.PostsFile, "count", n)
	}

	cards, err := controllers.NewCards(postService, commentService, loc, cfg.InvalidMessage, logger)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	app.Handler = routes.SetupRoutes(cards, logger)
	return app, nil
}

func (a *App) openStore() (repositories.PostRepository, repositories.CommentRepository, error) {
	switch a.Config.Store {
	case config.StoreBadger:
		store, err := repositories.OpenBadgerStore(a.Config.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store.Posts, store.Comments, nil
	case config.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(a.Config.SQLitePath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		db, err := sqlite.Open(a.Config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, db.Close)
		return sqlite.NewPostRepository(db), sqlite.NewCommentRepository(db), nil
	default:
		return memory.NewPostRepository(), memory.NewCommentRepository(), nil
	}
}

// Close releases the store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Serve handles requests on ln until ctx is done, then shuts down within
// the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := routes.NewServer(ln.Addr().String(), a.Handler)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}

// RunAppServer runs the post card server until SIGINT or SIGTERM and
// returns an exit code.
func RunAppServer(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	if err := applyServeArgs(cfg, args); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return 1
	}
	defer app.Close()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Addr, "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting post card server", "addr", ln.Addr().String(), "store", cfg.Store, "locale", cfg.Locale)
	if err := app.Serve(ctx, ln); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	logger.Info("server stopped")
	return 0
}

// applyServeArgs applies the --addr and --store flags on top of cfg.
func applyServeArgs(cfg *config.Config, args []string) error {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--addr", "--store":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", args[i])
			}
			if args[i] == "--addr" {
				cfg.Addr = args[i+1]
			} else {
				cfg.Store = args[i+1]
			}
			i++
		default:
			return fmt.Errorf("unknown serve option: %s", args[i])
		}
	}
	return cfg.Validate()
}
