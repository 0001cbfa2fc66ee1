// Package aggregate folds a fetched campaign list into dimension-keyed totals.
// Every function here is pure: it reads the campaigns, owns its accumulator for
// the duration of the call and never mutates its input.
package aggregate

import "github.com/AngelCh415/campaign-insights/internal/models"

// Metrics is the additive tuple accumulated per dimension key.
type Metrics struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Conversions float64 `json:"conversions"`
}

func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Spend:       m.Spend + o.Spend,
		Revenue:     m.Revenue + o.Revenue,
		Impressions: m.Impressions + o.Impressions,
		Clicks:      m.Clicks + o.Clicks,
		Conversions: m.Conversions + o.Conversions,
	}
}

// Active reports whether any count field is non-zero.
func (m Metrics) Active() bool {
	return m.Impressions != 0 || m.Clicks != 0 || m.Conversions != 0
}

// accumulator is a keyed fold target that remembers first-seen key order.
type accumulator[K comparable] struct {
	agg   map[K]*Metrics
	order []K
}

func newAccumulator[K comparable]() *accumulator[K] {
	return &accumulator[K]{agg: make(map[K]*Metrics)}
}

func (a *accumulator[K]) upsert(k K, m Metrics) {
	cur, ok := a.agg[k]
	if !ok {
		cur = &Metrics{}
		a.agg[k] = cur
		a.order = append(a.order, k)
	}
	*cur = cur.Add(m)
}

func (a *accumulator[K]) snapshot() map[K]Metrics {
	out := make(map[K]Metrics, len(a.agg))
	for k, v := range a.agg {
		out[k] = *v
	}
	return out
}

// CampaignMetrics reads the campaign-level totals.
func CampaignMetrics(c models.Campaign) Metrics {
	return Metrics{
		Spend:       c.Spend.Float(),
		Revenue:     c.Revenue.Float(),
		Impressions: c.Impressions.Float(),
		Clicks:      c.Clicks.Float(),
		Conversions: c.Conversions.Float(),
	}
}

// Totals sums campaign-level totals across the list.
func Totals(campaigns []models.Campaign) Metrics {
	var t Metrics
	for _, c := range campaigns {
		t = t.Add(CampaignMetrics(c))
	}
	return t
}
