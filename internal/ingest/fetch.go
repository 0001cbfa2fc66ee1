package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/AngelCh415/campaign-insights/internal/config"
	"github.com/AngelCh415/campaign-insights/internal/metrics"
	"github.com/AngelCh415/campaign-insights/internal/models"
	"github.com/AngelCh415/campaign-insights/internal/utils"
)

// Fetcher pulls the campaign feed. It never fails loudly: any transport,
// status or decode problem is logged and reported as a nil payload.
type Fetcher struct {
	c       HTTPClient
	url     string
	backoff utils.Backoff
	log     *slog.Logger
	m       *metrics.Metrics
}

func NewFetcher(c HTTPClient, cfg config.Config, log *slog.Logger, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		c:       c,
		url:     cfg.CampaignsURL,
		backoff: utils.NewBackoff(100*time.Millisecond, cfg.FetchRetries),
		log:     log,
		m:       m,
	}
}

func (f *Fetcher) Fetch(ctx context.Context) *models.Payload {
	start := time.Now()
	var p models.Payload
	err := f.backoff.Do(ctx, func(i int) error {
		p = models.Payload{}
		err := getJSON(ctx, f.c, f.url, &p)
		if err != nil && i < f.backoff.MaxRetries() {
			f.log.Debug("fetch attempt failed", slog.Int("attempt", i+1), slog.String("err", err.Error()))
		}
		return err
	})
	if err != nil {
		f.m.ObserveFetch(outcome(err), time.Since(start))
		f.log.Warn("campaign fetch failed", slog.String("url", f.url), slog.String("err", err.Error()))
		return nil
	}
	f.m.ObserveFetch("ok", time.Since(start))
	f.m.FetchedCampaigns.Set(float64(len(p.Campaigns)))
	f.log.Debug("campaign fetch complete", slog.Int("campaigns", len(p.Campaigns)))
	return &p
}

func outcome(err error) string {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		return "status"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
