package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/assistant"
	"github.com/sehatsahara/sahara/internal/bot"
	"github.com/sehatsahara/sahara/internal/config"
	"github.com/sehatsahara/sahara/internal/dispatch"
	"github.com/sehatsahara/sahara/internal/gateway"
	"github.com/sehatsahara/sahara/internal/identity"
	"github.com/sehatsahara/sahara/internal/logging"
	"github.com/sehatsahara/sahara/internal/metrics"
	"github.com/sehatsahara/sahara/internal/session"
	"github.com/sehatsahara/sahara/internal/store"
	"github.com/sehatsahara/sahara/internal/webchat"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "sahara.db"))
	if err != nil {
		logger.Fatal("store", zap.Error(err))
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewDispatchMetrics(reg)

	api := gateway.NewClient(cfg.APIBaseURL, cfg.GatewayTimeout, logger, m)

	// A configured CHATBOT_URL wins; otherwise the built-in assistant answers.
	var (
		responder bot.Responder
		local     *assistant.Assistant
	)
	if cfg.ChatbotURL != "" {
		responder = bot.NewRemote(api, cfg.ChatbotURL)
		logger.Info("sahara: using remote chatbot", zap.String("url", cfg.ChatbotURL))
	} else {
		local = assistant.New(cfg.EmergencyNumber, logger)
		responder = local
	}

	sessionMgr := session.NewManager(cfg.MessageRatePerMinute)
	identityHandler := identity.NewHandler(db, cfg.DefaultUserID, logger)
	botHandler := bot.NewHandler(responder, sessionMgr, db, logger)

	hub := webchat.NewHub(webchat.Options{
		Gateway:  api,
		Bot:      botHandler,
		Sessions: sessionMgr,
		Users:    identityHandler.Source,
		Logger:   logger,
		Metrics:  m,
		Timing: dispatch.Timing{
			ButtonReset:     cfg.ButtonResetDelay,
			NotificationTTL: cfg.NotificationTTL,
			EmergencyDial:   cfg.EmergencyDialDelay,
		},
		EmergencyNumber:    cfg.EmergencyNumber,
		FormatPrescription: assistant.SummarizePrescription,
		AllowedOrigins:     cfg.AllowedOrigins,
	})

	// Periodic cleanup of idle sessions, their locks and conversations
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 30m", func() {
		locks := sessionMgr.Cleanup(time.Hour)
		views := hub.Prune(time.Hour)
		convs := 0
		if local != nil {
			convs = local.Prune(time.Hour)
		}
		logger.Info("sahara: cleanup", zap.Int("locks", locks), zap.Int("sessions", views), zap.Int("conversations", convs))
	}); err != nil {
		logger.Fatal("cron", zap.Error(err))
	}
	scheduler.Start()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/ws", hub.ServeWS)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/view", hub.HandleView)
		r.Route("/user", identityHandler.Routes)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("sahara: listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("sahara: shutting down...")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	// Shutdown leaves hijacked websockets open; close them before waiting on background calls.
	hub.Close()
	hub.Wait()
	logger.Info("sahara: stopped")
}
