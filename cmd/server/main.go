package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AngelCh415/campaign-insights/internal/config"
	"github.com/AngelCh415/campaign-insights/internal/dashboard"
	"github.com/AngelCh415/campaign-insights/internal/geo"
	"github.com/AngelCh415/campaign-insights/internal/httpx"
	"github.com/AngelCh415/campaign-insights/internal/ingest"
	"github.com/AngelCh415/campaign-insights/internal/metrics"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("config error", slog.String("err", err.Error()))
		os.Exit(1)
	}

	m := metrics.New("campaign_insights")
	cl := ingest.NewHTTPClient(cfg.HTTPTimeout)
	fetcher := ingest.NewFetcher(cl, cfg, logger, m)
	svc := dashboard.NewService(fetcher, geo.Cities(), logger, m)

	r := httpx.NewRouter(logger, svc, m.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.String("campaigns_url", cfg.CampaignsURL))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
