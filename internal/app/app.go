package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/secure-site/config"
	"github.com/daniilsolovey/secure-site/internal/blog"
	"github.com/daniilsolovey/secure-site/internal/db"
	"github.com/daniilsolovey/secure-site/internal/rest"
	"github.com/daniilsolovey/secure-site/internal/rpc"
	"github.com/daniilsolovey/secure-site/internal/storage"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc"

// Storage is a blog.Storage that owns a connection or file handle.
type Storage interface {
	blog.Storage
	io.Closer
}

type App struct {
	Storage Storage
	Store   *blog.Store
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

// OpenStorage opens the backend selected by cfg.Storage.Driver.
func OpenStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if cfg.Storage.Migrate {
			if err := db.Migrate(ctx, &cfg.Database); err != nil {
				return nil, fmt.Errorf("migrate database: %w", err)
			}
		}

		dbConnect := pg.Connect(&cfg.Database)
		if cfg.Storage.LogQueries {
			dbConnect.AddQueryHook(db.NewQueryHook(logger))
		}

		repo := db.New(dbConnect)
		if err := repo.Ping(ctx); err != nil {
			repo.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return repo, nil
	case config.DriverSQLite:
		return storage.NewSQLite(cfg.Storage.Path)
	case config.DriverFile:
		return storage.NewFile(cfg.Storage.Path)
	case config.DriverMemory:
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// New wires the content store and the transports on top of an opened storage.
func New(ctx context.Context, cfg config.Config, st Storage, logger *slog.Logger) (*App, error) {
	opts := blog.Options{
		DefaultAuthor: cfg.Blog.DefaultAuthor,
		Categories:    cfg.Blog.Categories,
	}
	if cfg.Blog.SeedFile != "" {
		seed, err := blog.LoadSeedFile(cfg.Blog.SeedFile)
		if err != nil {
			return nil, err
		}
		opts.Seed = seed
	}

	store := blog.NewStore(st, logger, opts)
	store.Initialize(ctx)

	handler := rest.NewHandler(store, logger, rest.Options{
		PageSize: cfg.Blog.PageSize,
		BaseURL:  cfg.App.BaseURL,
	})

	e := handler.RegisterRoutes()
	e.POST(rpcPath, echo.WrapHandler(rpc.New(logger, store, cfg.Blog.PageSize)))

	return &App{
		Storage: st,
		Store:   store,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.Info("service started", "addr", addr, "storage", a.Config.Storage.Driver)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.Storage.Close())
}
