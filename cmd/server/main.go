package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/erikmg100/sesame-retell-integration/internal/agent"
	"github.com/erikmg100/sesame-retell-integration/internal/crm"
	"github.com/erikmg100/sesame-retell-integration/internal/dialogue"
	"github.com/erikmg100/sesame-retell-integration/internal/export"
	"github.com/erikmg100/sesame-retell-integration/internal/logger"
	"github.com/erikmg100/sesame-retell-integration/internal/presence"
	"github.com/erikmg100/sesame-retell-integration/internal/server"
	"github.com/erikmg100/sesame-retell-integration/internal/session"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "sesame-retell-integration").Info("starting intake agent")

	registry := session.NewRegistry()
	flow := dialogue.NewFlow(dialogue.DefaultConfig())
	voice := presence.New()
	intake := export.NewLog()

	notifier := crm.NewNotifier(os.Getenv("CRM_WEBHOOK_URL"))
	if notifier.Enabled() {
		log.Info("lead delivery enabled")
	} else {
		log.Info("CRM_WEBHOOK_URL not set, lead delivery disabled")
	}

	gabbi := agent.New(registry, flow, voice, notifier, intake)
	handler := server.NewHandler(gabbi, intake)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))
	server.RegisterRoutes(r, handler)

	addr := fmt.Sprintf("%s:%s", envOr("HOST", "0.0.0.0"), envOr("PORT", "8000"))
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: websocket calls stay open for the whole conversation
		IdleTimeout: 120 * time.Second,
	}

	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
