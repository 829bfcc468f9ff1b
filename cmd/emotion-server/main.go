package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/api"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/config"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.FromEnv()
	pl, err := pipeline.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("startup failed")
	}

	h := api.NewHandlers(pl, cfg.TranscriptDir, log)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.SetupRoutes(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
}
