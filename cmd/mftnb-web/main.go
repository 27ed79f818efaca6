// README: Entry point; loads config, wires stores and services, serves HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mftnb/internal/config"
	httptransport "mftnb/internal/http"
	httpmiddleware "mftnb/internal/http/middleware"
	"mftnb/internal/infra"
	"mftnb/internal/maps"
	"mftnb/internal/modules/booking"
	"mftnb/internal/modules/estimate"
	"mftnb/internal/modules/notify"
	"mftnb/internal/modules/tips"
)

const (
	shutdownTimeout = 5 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sessionStore booking.Store
	switch cfg.Session.Backend {
	case "redis":
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("redis init", zap.Error(err))
		}
		defer redisClient.Close()
		sessionStore = booking.NewRedisStore(redisClient, cfg.Session.TTL)
	default:
		memStore := booking.NewMemoryStore(cfg.Session.TTL)
		go memStore.RunSweeper(ctx, sweepInterval)
		sessionStore = memStore
	}

	var tipsSource tips.Lister
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()
		tipsSource = tips.NewStore(dbPool)
	}

	var distance booking.DistanceResolver
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal("maps init", zap.Error(err))
		}
		distance = routeSvc
	}

	var events notify.Publisher = notify.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		writer := infra.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer writer.Close()
		events = notify.NewKafkaPublisher(writer)
	}

	estimateSvc := estimate.NewService(logger)
	bookingSvc := booking.NewService(booking.Deps{
		Store:     sessionStore,
		Estimator: estimateSvc,
		Distance:  distance,
		Events:    events,
		Logger:    logger,
	})
	tipsSvc := tips.NewService(tipsSource, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Booking:  bookingSvc,
		Estimate: estimateSvc,
		Tips:     tipsSvc,
		Logger:   logger,
		SessionCookie: httpmiddleware.SessionCookie{
			Name:   cfg.Session.Cookie,
			MaxAge: cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		RatePerMinute: cfg.Rate.PerMinute,
		CORSOrigins:   cfg.CORS.Origins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("session_backend", cfg.Session.Backend),
			zap.Bool("tips_db", tipsSource != nil),
			zap.Bool("maps", distance != nil),
			zap.Bool("kafka", len(cfg.Kafka.Brokers) > 0),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}
