package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-console/internal/apiclient"
	"github.com/jwalitptl/clinic-console/internal/config"
	appointmentHandler "github.com/jwalitptl/clinic-console/internal/handler/appointment"
	navHandler "github.com/jwalitptl/clinic-console/internal/handler/nav"
	patientHandler "github.com/jwalitptl/clinic-console/internal/handler/patient"
	"github.com/jwalitptl/clinic-console/internal/nav"
	"github.com/jwalitptl/clinic-console/internal/router"
	appointmentScreen "github.com/jwalitptl/clinic-console/internal/screen/appointment"
	patientScreen "github.com/jwalitptl/clinic-console/internal/screen/patient"
	"github.com/jwalitptl/clinic-console/internal/session"
	"github.com/jwalitptl/clinic-console/pkg/logger"
	"github.com/jwalitptl/clinic-console/pkg/metrics"
)

func main() {
	log := logger.New(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New("clinic_console", registry)

	// Session comes from the token the login flow stored; screens
	// degrade to the no-role view when it is absent.
	sessions := session.NewTokenProvider(cfg.Session.Secret, cfg.Session.Token)
	if _, ok := sessions.Current(); !ok {
		log.Warn().Msg("no session present, screens run without role scoping")
	}

	client := apiclient.New(apiclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout(),
		RateLimit: rate.Limit(cfg.API.RateLimit),
		RateBurst: cfg.API.RateBurst,
		Logger:    log,
		Metrics:   m,
	})
	citas := apiclient.NewAppointments(client)
	pacientes := apiclient.NewPatients(client, cfg.Screens.PickerTTL())
	personal := apiclient.NewStaff(client, cfg.Screens.PickerTTL())

	citasScreen := appointmentScreen.NewScreen(citas, personal, pacientes, sessions, log, m)
	pacientesScreen := patientScreen.NewScreen(pacientes, sessions, log, m)
	shell := nav.NewShell(sessions)

	activateCtx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout())
	if err := citasScreen.Activate(activateCtx); err != nil {
		log.Error().Err(err).Msg("citas screen activation failed, starting with empty collection")
	}
	if err := pacientesScreen.Activate(activateCtx); err != nil {
		log.Error().Err(err).Msg("pacientes screen activation failed, starting with empty collection")
	}
	cancel()

	r := router.New(log, registry,
		appointmentHandler.NewHandler(citasScreen, cfg.Screens.PageSize),
		patientHandler.NewHandler(pacientesScreen, cfg.Screens.PageSize),
		navHandler.NewHandler(shell),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("clinic console listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
