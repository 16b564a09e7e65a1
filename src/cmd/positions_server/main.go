package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kataras/go-events"
	log "github.com/sirupsen/logrus"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/eventpubsub"
	"github.com/quantfold/tradecore/src/handler"
	"github.com/quantfold/tradecore/src/identifiers"
	"github.com/quantfold/tradecore/src/logger"
	"github.com/quantfold/tradecore/src/portfolio"
	"github.com/quantfold/tradecore/src/utils"
	"github.com/quantfold/tradecore/src/worker"
)

func main() {
	logger.Setup()

	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("failed to init environment variables: %v", err)
	}

	configPath := os.Getenv("APP_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	config, err := utils.LoadAppConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	eventpubsub.Init()

	clk := clock.UTCClock{}

	positionIDGenerator, err := identifiers.NewPositionIDGenerator(config.TraderTag, config.StrategyTag, clk, config.PositionIDStart)
	if err != nil {
		log.Fatalf("failed to create position id generator: %v", err)
	}

	pf, err := portfolio.NewPortfolio(eventmodels.AccountID(config.AccountID), positionIDGenerator)
	if err != nil {
		log.Fatalf("failed to create portfolio: %v", err)
	}

	if err := pf.SubscribeFills(); err != nil {
		log.Fatalf("failed to subscribe to fills: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emitter := events.New()
	for _, timer := range config.Timers {
		go worker.RunTimer(ctx, timer.Label, time.Duration(timer.IntervalSeconds)*time.Second, clk, emitter)
	}

	srv := &http.Server{
		Addr:    config.HTTPListenAddr,
		Handler: handler.Setup(pf),
	}

	go func() {
		log.Infof("listening on %s", config.HTTPListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
