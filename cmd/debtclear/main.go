// Package main запускает HTTP-сервер сервиса подготовки досудебных претензий.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/debtclear/intake-service/internal/claim"
	"github.com/debtclear/intake-service/internal/config"
	"github.com/debtclear/intake-service/internal/handler"
	"github.com/debtclear/intake-service/internal/letter"
	"github.com/debtclear/intake-service/internal/notifier"
	"github.com/debtclear/intake-service/internal/repository"
	"github.com/debtclear/intake-service/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	store, err := repository.NewFileStore(cfg.DocumentDir)
	if err != nil {
		sugar.Fatalw("document store initialization error", "error", err.Error())
	}

	terms := claim.DefaultTerms(decimal.NewFromFloat(cfg.BaseRatePercent))
	renderer := letter.NewRenderer(terms)

	var mailer service.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = notifier.NewClient(cfg.SendGridAddress, cfg.SendGridAPIKey, cfg.SenderEmail)
	} else {
		sugar.Warnw("sendgrid api key not set, notifications disabled")
	}

	svc := service.NewService(store, renderer, mailer, terms, logger)
	h := handler.NewHandler(svc, logger)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting debtclear intake server", "addr", cfg.RunAddress, "documentDir", cfg.DocumentDir)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
