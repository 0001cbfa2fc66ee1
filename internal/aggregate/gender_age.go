package aggregate

import "github.com/AngelCh415/campaign-insights/internal/models"

// GenderAge is ByAge partitioned by gender first.
type GenderAge struct {
	Male   map[string]Metrics `json:"male"`
	Female map[string]Metrics `json:"female"`
}

// For returns the age mapping of g, or nil for GenderUnrecognized.
func (ga GenderAge) For(g Gender) map[string]Metrics {
	switch g {
	case GenderMale:
		return ga.Male
	case GenderFemale:
		return ga.Female
	}
	return nil
}

func ByGenderAge(campaigns []models.Campaign) GenderAge {
	male, female := newAccumulator[string](), newAccumulator[string]()
	for _, c := range campaigns {
		for _, a := range allocate(c) {
			switch ParseGender(a.segment.Gender.String()) {
			case GenderMale:
				male.upsert(AgeLabel(a.segment.AgeGroup), a.metrics)
			case GenderFemale:
				female.upsert(AgeLabel(a.segment.AgeGroup), a.metrics)
			}
		}
	}
	return GenderAge{Male: male.snapshot(), Female: female.snapshot()}
}
