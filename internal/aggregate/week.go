package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/AngelCh415/campaign-insights/internal/models"
)

type WeekSummary struct {
	Start   string  `json:"week_start"`
	End     string  `json:"week_end"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

type weekKey struct{ start, end string }

// ByWeek buckets weekly entries by their literal (week_start, week_end) strings
// and returns them in ascending week_start order. Entries whose start does not
// parse as a date sort after the dated ones, by raw string.
func ByWeek(campaigns []models.Campaign) []WeekSummary {
	acc := newAccumulator[weekKey]()
	for _, c := range campaigns {
		for _, w := range c.WeeklyPerformance {
			k := weekKey{start: w.WeekStart.String(), end: w.WeekEnd.String()}
			acc.upsert(k, Metrics{Spend: w.Spend.Float(), Revenue: w.Revenue.Float()})
		}
	}
	totals := acc.snapshot()
	out := make([]WeekSummary, 0, len(acc.order))
	for _, k := range acc.order {
		m := totals[k]
		out = append(out, WeekSummary{Start: k.start, End: k.end, Spend: m.Spend, Revenue: m.Revenue})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := ParseWeekDate(out[i].Start)
		tj, okJ := ParseWeekDate(out[j].Start)
		switch {
		case okI && okJ && !ti.Equal(tj):
			return ti.Before(tj)
		case okI != okJ:
			return okI
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

var weekLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// ParseWeekDate accepts ISO dates with or without a time part.
func ParseWeekDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range weekLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
