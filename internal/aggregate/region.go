package aggregate

import (
	"sort"
	"strings"

	"github.com/AngelCh415/campaign-insights/internal/models"
)

// Locator resolves a normalized region key to coordinates.
type Locator interface {
	Locate(key string) (lat, lon float64, ok bool)
}

type RegionSummary struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Spend     float64 `json:"spend"`
	Revenue   float64 `json:"revenue"`
}

type RegionResult struct {
	Regions []RegionSummary `json:"regions"`
	// Unmatched lists region names with no coordinates, first-seen order, no duplicates.
	Unmatched []string `json:"unmatched,omitempty"`
}

// ByRegion sums spend and revenue per located region and sorts by revenue,
// highest first. Name, country and coordinates come from the first entry seen.
func ByRegion(campaigns []models.Campaign, loc Locator) RegionResult {
	idx := map[string]int{}
	var out RegionResult
	missed := map[string]struct{}{}
	for _, c := range campaigns {
		for _, r := range c.RegionalPerformance {
			name := strings.TrimSpace(r.Region.String())
			key := norm(name)
			lat, lon, ok := loc.Locate(key)
			if !ok {
				if _, seen := missed[key]; !seen && key != "" {
					missed[key] = struct{}{}
					out.Unmatched = append(out.Unmatched, name)
				}
				continue
			}
			i, seen := idx[key]
			if !seen {
				i = len(out.Regions)
				idx[key] = i
				out.Regions = append(out.Regions, RegionSummary{
					Key:       key,
					Name:      name,
					Country:   strings.TrimSpace(r.Country.String()),
					Latitude:  lat,
					Longitude: lon,
				})
			}
			out.Regions[i].Spend += r.Spend.Float()
			out.Regions[i].Revenue += r.Revenue.Float()
		}
	}
	sort.SliceStable(out.Regions, func(i, j int) bool {
		return out.Regions[i].Revenue > out.Regions[j].Revenue
	})
	return out
}
