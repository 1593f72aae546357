package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trtech123/tos/config"
	"github.com/trtech123/tos/internal/email"
	"github.com/trtech123/tos/internal/kafka"
	"github.com/trtech123/tos/internal/metrics"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() || cfg.Kafka.NotificationsTopic == "" {
		log.Fatalf("worker needs kafka.brokers and kafka.notifications_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Worker.MetricsAddress != "" {
		go serveMetrics(cfg.Worker.MetricsAddress)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()
	var sent atomic.Int64

	go logProgress(ctx, &sent, time.Duration(cfg.Worker.LogIntervalSeconds)*time.Second)

	log.Printf("consuming %s as group %s", cfg.Kafka.NotificationsTopic, cfg.Kafka.GroupID)
	err = consumer.Consume(ctx, kafka.EventHandler(func(ctx context.Context, event kafka.BookingEvent) error {
		err := sender.Send(ctx, event)
		metrics.ObserveNotification(event.Type, err)
		if err != nil {
			return err
		}
		sent.Add(1)
		return nil
	}))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("shutting down")
}

func logProgress(ctx context.Context, sent *atomic.Int64, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := sent.Swap(0); n > 0 {
				log.Printf("sent %d booking notifications", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("WARNING: metrics server: %v", err)
	}
}
