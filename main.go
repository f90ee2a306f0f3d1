package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"mememage-web/client"
	"mememage-web/controllers"
	"mememage-web/models"
	"mememage-web/routes"
	"mememage-web/storage"
	"mememage-web/templates"
	"mememage-web/utils"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/v2"
)

func main() {
	conf, err := utils.NewConfig("config.toml")
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	if err := utils.SetLogLevel(conf.String("log.level")); err != nil {
		log.Fatal("invalid log level", "err", err)
	}
	l := utils.NewLogger("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, conf)
	if err != nil {
		l.Fatal("failed to open storage", "driver", conf.String("storage.driver"), "err", err)
	}
	defer closeStore()

	api := client.New(conf.String("api.base_url"), conf.Duration("api.timeout"))
	hub := controllers.NewHub()

	registry := controllers.NewRegistry(api, store, controllers.RegistryOptions{
		FeedLimit: conf.Int("feed.limit"),
		Templates: conf.Strings("memes.templates"),
		OnFeed: func(clientID string, page models.Page, state models.FeedState) {
			if hub.Connections(clientID) == 0 {
				return
			}
			var buf bytes.Buffer
			if err := templates.FeedFragment(page, state, api.ResolveURL).Render(context.Background(), &buf); err != nil {
				l.Error("failed to render feed fragment", "err", err)
				return
			}
			hub.Publish(clientID, buf.String())
		},
	})

	idleTimeout := conf.Duration("client.idle_timeout")
	registry.StartPeriodicCleanup(ctx, conf.Duration("client.cleanup_interval"), idleTimeout)
	l.Info("started periodic client cleanup", "idle_timeout", idleTimeout)

	if conf.String("log.level") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.MemEmageRouter(r, routes.Deps{
		Registry:    registry,
		Hub:         hub,
		API:         api,
		Resolve:     api.ResolveURL,
		IdleTimeout: idleTimeout,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Int("server.port")),
		Handler: r,
	}

	go func() {
		l.Info("server starting", "addr", srv.Addr, "api", api.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server failed", "err", err)
		}
		stop()
	}()

	<-ctx.Done()

	l.Info("shutting down gracefully")
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("shutdown failed", "err", err)
	}
}

// openStore returns the configured session store and a func releasing it.
func openStore(ctx context.Context, conf *koanf.Koanf) (storage.Store, func(), error) {
	switch driver := conf.String("storage.driver"); driver {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "file":
		s, err := storage.NewFileStore(conf.String("storage.path"))
		if err != nil {
			return nil, nil, err
		}
		utils.NewLogger("storage").Info("using file storage", "path", s.Path())
		return s, func() {}, nil
	case "postgres":
		db, err := utils.SetupDatabase(ctx, conf.String("database.url"))
		if err != nil {
			return nil, nil, err
		}
		s, err := storage.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
