package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"coursefeed/internal/catalog"
	"coursefeed/internal/config"
	"coursefeed/internal/mappers"
	"coursefeed/internal/metrics"
	"coursefeed/internal/providers/learnapi"
	"coursefeed/internal/server"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	client := learnapi.New(cfg.BackendBaseURL)
	client.ProxyBase = cfg.ProxyBaseURL
	client.Token = func() string { return cfg.AuthToken }

	reg := metrics.NewRegistry()

	svc := catalog.NewService(client, mappers.Mapper{MediaBaseURL: cfg.MediaBaseURL}, cfg.DefaultStudentID)
	svc.SetMetrics(reg)

	proxy := server.NewProxy(cfg.BackendBaseURL, log)
	proxy.Metrics = reg

	handler := server.New(log, svc, proxy, reg)

	// primer fetch en background; sin student id configurado se queda en el
	// catálogo fallback
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := svc.Refresh(ctx, ""); err != nil {
			log.Warn("initial catalog refresh failed", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("coursefeed listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown error", zap.Error(err))
	}
}
