package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AngelCh415/campaign-insights/internal/aggregate"
	"github.com/AngelCh415/campaign-insights/internal/metrics"
	"github.com/AngelCh415/campaign-insights/internal/models"
)

// Fetcher returns the campaign feed, or nil when it could not be retrieved.
type Fetcher interface {
	Fetch(ctx context.Context) *models.Payload
}

// Service fetches the feed on every call and builds sections from scratch.
// Nothing is cached between calls.
type Service struct {
	f   Fetcher
	loc aggregate.Locator
	log *slog.Logger
	m   *metrics.Metrics
}

func NewService(f Fetcher, loc aggregate.Locator, log *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{f: f, loc: loc, log: log, m: m}
}

func (s *Service) campaigns(ctx context.Context) []models.Campaign {
	p := s.f.Fetch(ctx)
	if p == nil {
		return nil
	}
	return p.Campaigns
}

func (s *Service) Dashboard(ctx context.Context) Dashboard {
	defer s.observe("all", time.Now())
	cs := s.campaigns(ctx)

	// The builders share the read-only campaign slice and each writes only its own field.
	var d Dashboard
	var unmatched []string
	var g errgroup.Group
	g.Go(func() error { d.Overview = BuildOverview(cs); return nil })
	g.Go(func() error { d.Gender = BuildGender(cs); return nil })
	g.Go(func() error { d.Age = BuildAge(cs); return nil })
	g.Go(func() error { d.GenderAge = BuildGenderAge(cs); return nil })
	g.Go(func() error { d.Device = BuildDevice(cs); return nil })
	g.Go(func() error { d.Region, unmatched = BuildRegion(cs, s.loc); return nil })
	g.Go(func() error { d.Week = BuildWeek(cs); return nil })
	// builders have no failure path; Wait only joins them
	_ = g.Wait()

	s.reportUnmatched(ctx, unmatched)
	return d
}

func (s *Service) Overview(ctx context.Context) Overview {
	defer s.observe("overview", time.Now())
	return BuildOverview(s.campaigns(ctx))
}

func (s *Service) Gender(ctx context.Context) GenderSection {
	defer s.observe("gender", time.Now())
	return BuildGender(s.campaigns(ctx))
}

func (s *Service) Age(ctx context.Context) AgeSection {
	defer s.observe("age", time.Now())
	return BuildAge(s.campaigns(ctx))
}

func (s *Service) GenderAge(ctx context.Context) GenderAgeSection {
	defer s.observe("gender_age", time.Now())
	return BuildGenderAge(s.campaigns(ctx))
}

func (s *Service) Device(ctx context.Context) DeviceSection {
	defer s.observe("device", time.Now())
	return BuildDevice(s.campaigns(ctx))
}

func (s *Service) Region(ctx context.Context) RegionSection {
	defer s.observe("region", time.Now())
	sec, unmatched := BuildRegion(s.campaigns(ctx), s.loc)
	s.reportUnmatched(ctx, unmatched)
	return sec
}

func (s *Service) Week(ctx context.Context) WeekSection {
	defer s.observe("week", time.Now())
	return BuildWeek(s.campaigns(ctx))
}

func (s *Service) reportUnmatched(ctx context.Context, names []string) {
	if len(names) == 0 {
		return
	}
	s.m.UnmatchedRegions.Add(float64(len(names)))
	s.log.WarnContext(ctx, "regions without coordinates dropped",
		slog.Int("count", len(names)),
		slog.Any("regions", names))
}

func (s *Service) observe(section string, start time.Time) {
	s.m.ObserveBuild(section, time.Since(start))
}
