package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"clubhub-backend/internal/auth"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/coordinator"
	"clubhub-backend/internal/handler"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/middleware"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// newRouter wires repositories, coordinators, services and handlers onto a
// gin engine.
func newRouter(cfg *config.Config, db *gorm.DB, reg *prometheus.Registry) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewDBStatsCollector(sqlDB, "clubhub")); err != nil {
		return nil, fmt.Errorf("register db stats: %w", err)
	}
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	tokens, err := auth.NewTokens(auth.Options{
		Secret:        cfg.Auth.JWTSecret,
		PublicKeyFile: cfg.Auth.PublicKeyFile,
		Issuer:        cfg.Auth.Issuer,
		Audience:      cfg.Auth.Audience,
		TTL:           cfg.Auth.TokenTTL,
	})
	if err != nil {
		return nil, err
	}

	repos := repository.New(db)
	organizers := coordinator.NewOrganizers(db, repos)
	follows := coordinator.NewFollows(db, repos)
	tags := coordinator.NewCategories(db, repos)

	clubs := service.NewClubService(repos.Clubs, repos.Categories, organizers, tags)
	users := service.NewUserService(repos.Users, follows, organizers)
	categories := service.NewCategoryService(repos.Categories)
	events := service.NewEventService(repos.Events)

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger.Named("http")),
		middleware.Recovery(),
		metrics.Middleware(),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
	)

	handler.SetupRoutes(r, handler.Handlers{
		Auth:       handler.NewAuthHandler(auth.NewService(users, tokens)),
		Clubs:      handler.NewClubHandler(clubs),
		Users:      handler.NewUserHandler(users),
		Categories: handler.NewCategoryHandler(categories),
		Events:     handler.NewEventHandler(events),
		DB:         sqlDB,
		Metrics:    metrics.Handler(),
	}, middleware.Auth(tokens))
	return r, nil
}

// serve runs the API until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := newRouter(cfg, db, reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.L().Info("server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
