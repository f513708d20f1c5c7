package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vintervu/interview-server/internal/bootstrap"
	"github.com/vintervu/interview-server/internal/config"
	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/observability/logging"
	"github.com/vintervu/interview-server/internal/observability/metrics"
)

const serviceName = "interview-worker"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(serviceName)
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", workerMetrics.Handler())
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: metricsMux,
	}
	go func() {
		logger.Info("worker metrics listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker metrics server failed", "error", err)
		}
	}()

	logger.Info("worker subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeInterviewCompleted(ctx, func(handlerCtx context.Context, event domain.InterviewCompleted) error {
		workerMetrics.StartArchive()
		workerMetrics.ObserveQueueLag(serviceName, time.Since(event.CompletedAt))
		start := time.Now()

		archiveCtx, cancel := context.WithTimeout(handlerCtx, time.Minute)
		defer cancel()
		archiveErr := app.ArchiveUC.Archive(archiveCtx, event)
		workerMetrics.FinishArchive(serviceName, time.Since(start), archiveErr)
		return archiveErr
	})
	if err != nil {
		logger.Error("worker subscribe failed", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
}
