package main

import (
	"fmt"

	"github.com/weisetech/booking-admin/internal/adapter"
	"github.com/weisetech/booking-admin/internal/audit"
	"github.com/weisetech/booking-admin/internal/config"
	handlerhttp "github.com/weisetech/booking-admin/internal/handler/http"
	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/internal/ratelimit"
	"github.com/weisetech/booking-admin/internal/server"
	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/internal/session"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("booking-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	sessionStore, err := session.NewSQLiteStore(cfg.Session.StorePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening session store")
	}
	defer sessionStore.Close()

	auditLog := audit.NewLogger(cfg.Logs, log)
	sessions := session.NewManager(sessionStore, auditLog, cfg.App.Secret, cfg.Session, log)
	limiter := ratelimit.NewLimiter(cfg.RateLimit.Dir, log)
	bookings := adapter.NewBookingsClient(cfg.Upstream, log)
	reader := audit.NewReader(cfg.Logs.Dir)

	services := service.NewServices(cfg, auditLog, reader, bookings, log)

	handler, err := handlerhttp.NewHandler(services, sessions, limiter, auditLog, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
