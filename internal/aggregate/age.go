package aggregate

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/AngelCh415/campaign-insights/internal/models"
)

// CanonicalAgeGroups is the fixed presentation order; other labels follow it.
var CanonicalAgeGroups = []string{"18-24", "25-34", "35-44", "45-54", "55+"}

const UnknownAgeGroup = "Unknown"

// AgeLabel keeps the label verbatim unless it is blank.
func AgeLabel(t models.Text) string {
	if strings.TrimSpace(t.String()) == "" {
		return UnknownAgeGroup
	}
	return t.String()
}

// ByAge totals every demographic segment by age group, whatever its gender.
func ByAge(campaigns []models.Campaign) map[string]Metrics {
	acc := newAccumulator[string]()
	for _, c := range campaigns {
		for _, a := range allocate(c) {
			acc.upsert(AgeLabel(a.segment.AgeGroup), a.metrics)
		}
	}
	return acc.snapshot()
}

// AgeOrder lists the canonical groups followed by every other observed label
// in ascending lexicographic order.
func AgeOrder(byAge map[string]Metrics) []string {
	extras := lo.Filter(lo.Keys(byAge), func(k string, _ int) bool {
		return !lo.Contains(CanonicalAgeGroups, k)
	})
	sort.Strings(extras)
	out := make([]string, 0, len(CanonicalAgeGroups)+len(extras))
	out = append(out, CanonicalAgeGroups...)
	return append(out, extras...)
}
