package aggregate

import "github.com/AngelCh415/campaign-insights/internal/models"

// Shares returns each segment's fraction of its campaign's spend and revenue.
// Audience percentages are used as weights when they sum to a positive value;
// otherwise every segment gets an equal share. The result always sums to 1
// for a non-empty input.
func Shares(segs []models.Segment) []float64 {
	out := make([]float64, len(segs))
	if len(segs) == 0 {
		return out
	}
	// weights are scaled by the largest one so their sum cannot overflow
	var top float64
	for _, s := range segs {
		top = max(top, weight(s))
	}
	var sum float64
	if top > 0 {
		for i, s := range segs {
			out[i] = weight(s) / top
			sum += out[i]
		}
	}
	for i := range out {
		if sum > 0 {
			out[i] /= sum
		} else {
			out[i] = 1 / float64(len(segs))
		}
	}
	return out
}

// negative percentages carry no weight
func weight(s models.Segment) float64 {
	if p := s.PercentageOfAudience.Float(); p > 0 {
		return p
	}
	return 0
}

// allocated is one segment's contribution: counts verbatim, money by share.
type allocated struct {
	segment models.Segment
	metrics Metrics
}

func allocate(c models.Campaign) []allocated {
	segs := c.DemographicBreakdown
	shares := Shares(segs)
	spend, revenue := c.Spend.Float(), c.Revenue.Float()
	out := make([]allocated, len(segs))
	for i, s := range segs {
		out[i] = allocated{
			segment: s,
			metrics: Metrics{
				Spend:       spend * shares[i],
				Revenue:     revenue * shares[i],
				Impressions: s.Performance.Impressions.Float(),
				Clicks:      s.Performance.Clicks.Float(),
				Conversions: s.Performance.Conversions.Float(),
			},
		}
	}
	return out
}
