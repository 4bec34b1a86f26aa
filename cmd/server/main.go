// HTTP API - журнал баллов, покупки, профиль
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	api "github.com/aksisonline/mockify/points/internal/api"
	db "github.com/aksisonline/mockify/points/internal/db"
	rabbit "github.com/aksisonline/mockify/points/internal/external/rabbitmq"
	storage "github.com/aksisonline/mockify/points/internal/external/storage"
	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	services "github.com/aksisonline/mockify/points/internal/services"
	otel "github.com/aksisonline/mockify/points/observability/otel"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("POINTS_PORT")
	if port == "" {
		panic("env POINTS_PORT is not set")
	}
	mport := os.Getenv("POINTS_METRICS_PORT")
	if mport == "" {
		panic("env POINTS_METRICS_PORT is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tracing
	shutdownTracer := otel.InitTracer(ctx)
	defer shutdownTracer()

	// database
	dt, err := db.NewPointsDB(logger)
	if err != nil {
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// очередь уведомлений - best effort
	var notify interf.NotifySink
	notify, err = rabbit.NewNotifyPublisher()
	if err != nil {
		logger.Error(err.Error())
		notify = nil
	}

	// файловое хранилище
	files, err := storage.NewStorage()
	if err != nil {
		panic(err)
	}

	// services
	tnx := services.NewTransactionService(logger, dt, dt, cache)
	purchases := services.NewPurchaseService(logger, dt, dt, cache, notify)
	categories := services.NewCategoryService(logger, dt)
	profiles := services.NewProfileService(logger, dt, cache, files)

	// api handlers
	h := api.NewHandler(logger, tnx, purchases, categories, profiles, dt)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(h, "points-api"),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	// метрики отдельным портом
	mmux := http.NewServeMux()
	mmux.Handle("/metrics", promhttp.Handler())
	msrv := &http.Server{Addr: ":" + mport, Handler: mmux}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(msrv.ListenAndServe)
	g.Go(func() error {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		select {
		case <-interrupt:
		case <-gctx.Done():
		}
		timeout, tcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer tcancel()
		msrv.Shutdown(timeout)
		return srv.Shutdown(timeout)
	})

	if err = g.Wait(); err != nil && err != http.ErrServerClosed {
		logger.Error("shutdown error", zap.Error(err))
	}
}
