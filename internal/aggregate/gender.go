package aggregate

import "github.com/AngelCh415/campaign-insights/internal/models"

type GenderMetrics struct {
	Clicks  float64 `json:"clicks"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

type GenderTotals struct {
	Male   GenderMetrics `json:"male"`
	Female GenderMetrics `json:"female"`
}

// ByGender totals male and female segments. Segments with any other gender
// are skipped here but still count towards ByAge.
func ByGender(campaigns []models.Campaign) GenderTotals {
	var out GenderTotals
	for _, c := range campaigns {
		for _, a := range allocate(c) {
			var dst *GenderMetrics
			switch ParseGender(a.segment.Gender.String()) {
			case GenderMale:
				dst = &out.Male
			case GenderFemale:
				dst = &out.Female
			default:
				continue
			}
			dst.Clicks += a.metrics.Clicks
			dst.Spend += a.metrics.Spend
			dst.Revenue += a.metrics.Revenue
		}
	}
	return out
}
