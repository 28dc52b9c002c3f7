package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kalyanram2201/KrishiSathi/internal/advisory/disease"
	"github.com/kalyanram2201/KrishiSathi/internal/advisory/weather"
	"github.com/kalyanram2201/KrishiSathi/internal/cart"
	"github.com/kalyanram2201/KrishiSathi/internal/catalog"
	"github.com/kalyanram2201/KrishiSathi/internal/checkout"
	"github.com/kalyanram2201/KrishiSathi/internal/config"
	"github.com/kalyanram2201/KrishiSathi/internal/db"
	"github.com/kalyanram2201/KrishiSathi/internal/events"
	"github.com/kalyanram2201/KrishiSathi/internal/httpapi"
	"github.com/kalyanram2201/KrishiSathi/internal/order"
	"github.com/kalyanram2201/KrishiSathi/internal/orders"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	store := cart.NewStore()
	cat := catalog.New()

	var placer order.Placer
	var rabbitPlacer *events.RabbitPlacer
	if cfg.RabbitURL != "" {
		conn, err := events.DialRabbit(cfg.RabbitURL)
		if err != nil {
			log.WithError(err).Fatal("connect rabbitmq")
		}
		defer conn.Close()

		rabbitPlacer, err = events.NewRabbitPlacer(conn)
		if err != nil {
			log.WithError(err).Fatal("create order publisher")
		}
		placer = rabbitPlacer
		log.Info("using rabbitmq order placer")
	} else {
		placer = &order.SimulatedPlacer{Latency: cfg.SimulatedLatency}
		log.WithField("latency", cfg.SimulatedLatency).Info("using simulated order placer")
	}

	manager := checkout.NewManager(store, placer, log, cfg.SubmitTimeout)

	deps := httpapi.Deps{
		Cart:     store,
		Checkout: manager,
		Catalog:  cat,
		Advisory: httpapi.NewAdvisoryHandler(
			disease.NewClassifier(time.Now().UnixNano()),
			weather.NewClient(cfg.OpenWeatherAPIKey),
		),
	}

	if cfg.OrdersDSN != "" {
		if err := db.RunMigrations(cfg.OrdersDSN, log); err != nil {
			log.WithError(err).Fatal("run migrations")
		}
		database, err := db.Open(cfg.OrdersDSN)
		if err != nil {
			log.WithError(err).Fatal("open orders db")
		}
		defer database.Close()

		repo := orders.NewRepository(database)
		manager.SetArchiver(repo)
		deps.OrdersRepo = repo
		log.Info("order archive enabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewRouter(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("krishisathi listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.WithError(err).Fatal("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown error")
	}
	if rabbitPlacer != nil {
		if err := rabbitPlacer.Close(); err != nil {
			log.WithError(err).Warn("publisher close error")
		}
	}
}
