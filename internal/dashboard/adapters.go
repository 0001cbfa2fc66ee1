package dashboard

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/AngelCh415/campaign-insights/internal/aggregate"
	"github.com/AngelCh415/campaign-insights/internal/format"
	"github.com/AngelCh415/campaign-insights/internal/models"
)

const (
	colorSpend   = "#6366f1"
	colorRevenue = "#10b981"
	colorMale    = "#3b82f6"
	colorFemale  = "#ec4899"
	colorMobile  = "#f59e0b"
	colorDesktop = "#8b5cf6"

	topRegions = 10
)

type Overview struct {
	Cards     []models.Card        `json:"cards"`
	Campaigns []models.CampaignRow `json:"campaigns"`
}

type GenderSection struct {
	Totals  aggregate.GenderTotals `json:"totals"`
	Cards   []models.Card          `json:"cards"`
	Clicks  []models.ChartPoint    `json:"clicks"`
	Spend   []models.ChartPoint    `json:"spend"`
	Revenue []models.ChartPoint    `json:"revenue"`
}

type AgeSection struct {
	Order   []string            `json:"order"`
	Spend   []models.ChartPoint `json:"spend"`
	Revenue []models.ChartPoint `json:"revenue"`
	Rows    []models.AgeRow     `json:"rows"`
}

type GenderAgeSection struct {
	Rows []models.GenderAgeRow `json:"rows"`
}

type DeviceSection struct {
	Totals     aggregate.DeviceTotals `json:"totals"`
	Cards      []models.Card          `json:"cards"`
	Rows       []models.DeviceRow     `json:"rows"`
	ClickShare []models.ChartPoint    `json:"click_share"`
}

type RegionSection struct {
	Points     []models.MapPoint   `json:"points"`
	TopRevenue []models.ChartPoint `json:"top_revenue"`
}

type WeekSection struct {
	Spend   []models.ChartPoint `json:"spend"`
	Revenue []models.ChartPoint `json:"revenue"`
}

// Dashboard is every section built from one fetch.
type Dashboard struct {
	Overview  Overview         `json:"overview"`
	Gender    GenderSection    `json:"gender"`
	Age       AgeSection       `json:"age"`
	GenderAge GenderAgeSection `json:"gender_age"`
	Device    DeviceSection    `json:"device"`
	Region    RegionSection    `json:"region"`
	Week      WeekSection      `json:"week"`
}

func BuildOverview(campaigns []models.Campaign) Overview {
	t := aggregate.Totals(campaigns)
	cards := []models.Card{
		{Title: "Total Spend", Value: format.Currency(t.Spend)},
		{Title: "Total Revenue", Value: format.Currency(t.Revenue)},
		{Title: "ROAS", Value: format.Ratio(aggregate.ROAS(t.Revenue, t.Spend))},
		{Title: "Impressions", Value: format.Count(t.Impressions)},
		{Title: "Clicks", Value: format.Count(t.Clicks)},
		{Title: "Conversions", Value: format.Count(t.Conversions)},
		{Title: "CTR", Value: format.Percent(aggregate.CTR(t.Clicks, t.Impressions))},
		{Title: "Conversion Rate", Value: format.Percent(aggregate.ConversionRate(t.Conversions, t.Clicks))},
	}
	rows := make([]models.CampaignRow, 0, len(campaigns))
	for _, c := range campaigns {
		m := aggregate.CampaignMetrics(c)
		d := aggregate.Derive(m, 0)
		rows = append(rows, models.CampaignRow{
			ID:             c.ID.String(),
			Name:           c.Name.String(),
			Impressions:    format.Round(m.Impressions),
			Clicks:         format.Round(m.Clicks),
			Conversions:    format.Round(m.Conversions),
			Spend:          format.Round2(m.Spend),
			Revenue:        format.Round2(m.Revenue),
			CTR:            format.Round2(d.CTR),
			ConversionRate: format.Round2(d.ConversionRate),
			ROAS:           round2Ptr(d.ROAS),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Impressions > rows[j].Impressions })
	return Overview{Cards: cards, Campaigns: rows}
}

func BuildGender(campaigns []models.Campaign) GenderSection {
	t := aggregate.ByGender(campaigns)
	type entry struct {
		label, color string
		m            aggregate.GenderMetrics
	}
	entries := []entry{{"Male", colorMale, t.Male}, {"Female", colorFemale, t.Female}}

	s := GenderSection{Totals: t, Cards: make([]models.Card, 0, 6), Clicks: make([]models.ChartPoint, 0, 2)}
	spend := make([]models.ChartPoint, 0, 2)
	revenue := make([]models.ChartPoint, 0, 2)
	for _, e := range entries {
		s.Cards = append(s.Cards,
			models.Card{Title: e.label + " Clicks", Value: format.Count(e.m.Clicks)},
			models.Card{Title: e.label + " Spend", Value: format.Currency(e.m.Spend)},
			models.Card{Title: e.label + " Revenue", Value: format.Currency(e.m.Revenue)},
		)
		s.Clicks = append(s.Clicks, models.ChartPoint{Label: e.label, Value: e.m.Clicks, Color: e.color})
		spend = append(spend, models.ChartPoint{Label: e.label, Value: format.Round2(e.m.Spend), Color: e.color})
		revenue = append(revenue, models.ChartPoint{Label: e.label, Value: format.Round2(e.m.Revenue), Color: e.color})
	}
	s.Spend = positive(spend)
	s.Revenue = positive(revenue)
	return s
}

func BuildAge(campaigns []models.Campaign) AgeSection {
	byAge := aggregate.ByAge(campaigns)
	order := aggregate.AgeOrder(byAge)

	spend := make([]models.ChartPoint, 0, len(order))
	revenue := make([]models.ChartPoint, 0, len(order))
	rows := make([]models.AgeRow, 0, len(order))
	for _, age := range order {
		m := byAge[age]
		spend = append(spend, models.ChartPoint{Label: age, Value: format.Round2(m.Spend), Color: colorSpend})
		revenue = append(revenue, models.ChartPoint{Label: age, Value: format.Round2(m.Revenue), Color: colorRevenue})
		if !m.Active() && m.Spend <= 0 && m.Revenue <= 0 {
			continue
		}
		rows = append(rows, models.AgeRow{
			AgeGroup:       age,
			Impressions:    format.Round(m.Impressions),
			Clicks:         format.Round(m.Clicks),
			Conversions:    format.Round(m.Conversions),
			Spend:          format.Round2(m.Spend),
			Revenue:        format.Round2(m.Revenue),
			CTR:            format.Round2(aggregate.CTR(m.Clicks, m.Impressions)),
			ConversionRate: format.Round2(aggregate.ConversionRate(m.Conversions, m.Clicks)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Impressions > rows[j].Impressions })
	return AgeSection{Order: order, Spend: positive(spend), Revenue: positive(revenue), Rows: rows}
}

// BuildGenderAge drops rows with no impressions, clicks or conversions.
func BuildGenderAge(campaigns []models.Campaign) GenderAgeSection {
	ga := aggregate.ByGenderAge(campaigns)
	rows := make([]models.GenderAgeRow, 0)
	for _, g := range []aggregate.Gender{aggregate.GenderMale, aggregate.GenderFemale} {
		byAge := ga.For(g)
		for _, age := range aggregate.AgeOrder(byAge) {
			m, ok := byAge[age]
			if !ok || !m.Active() {
				continue
			}
			rows = append(rows, models.GenderAgeRow{
				Gender:         g.String(),
				AgeGroup:       age,
				Impressions:    format.Round(m.Impressions),
				Clicks:         format.Round(m.Clicks),
				Conversions:    format.Round(m.Conversions),
				Spend:          format.Round2(m.Spend),
				Revenue:        format.Round2(m.Revenue),
				CTR:            format.Round2(aggregate.CTR(m.Clicks, m.Impressions)),
				ConversionRate: format.Round2(aggregate.ConversionRate(m.Conversions, m.Clicks)),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Impressions > rows[j].Impressions })
	return GenderAgeSection{Rows: rows}
}

func BuildDevice(campaigns []models.Campaign) DeviceSection {
	t := aggregate.ByDevice(campaigns)
	s := DeviceSection{Totals: t}
	for _, d := range t.All() {
		label := title(d.Device)
		s.Cards = append(s.Cards,
			models.Card{Title: label + " Traffic Share", Value: format.Percent(d.TrafficShare)},
			models.Card{Title: label + " ROAS", Value: format.Ratio(d.ROAS)},
		)
		s.Rows = append(s.Rows, models.DeviceRow{
			Device:         d.Device,
			Impressions:    format.Round(d.Impressions),
			Clicks:         format.Round(d.Clicks),
			Conversions:    format.Round(d.Conversions),
			Spend:          format.Round2(d.Spend),
			Revenue:        format.Round2(d.Revenue),
			CTR:            format.Round2(d.CTR),
			ConversionRate: format.Round2(d.ConversionRate),
			ROAS:           round2Ptr(d.ROAS),
			TrafficShare:   format.Round2(d.TrafficShare),
		})
		s.ClickShare = append(s.ClickShare, models.ChartPoint{
			Label: label,
			Value: format.Round2(d.TrafficShare),
			Color: deviceColor(d.Device),
		})
	}
	sort.SliceStable(s.Rows, func(i, j int) bool { return s.Rows[i].Impressions > s.Rows[j].Impressions })
	return s
}

// BuildRegion also returns the region names that could not be placed on the map.
func BuildRegion(campaigns []models.Campaign, loc aggregate.Locator) (RegionSection, []string) {
	res := aggregate.ByRegion(campaigns, loc)
	points := make([]models.MapPoint, 0, len(res.Regions))
	for _, r := range res.Regions {
		points = append(points, models.MapPoint{
			ID:        r.Key,
			Label:     r.Name,
			Subtitle:  r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Value:     format.Round2(r.Revenue),
			Color:     colorRevenue,
		})
	}
	top := positive(lo.Map(points, func(p models.MapPoint, _ int) models.ChartPoint {
		return models.ChartPoint{Label: p.Label, Value: p.Value, Color: colorRevenue}
	}))
	if len(top) > topRegions {
		top = top[:topRegions]
	}
	return RegionSection{Points: points, TopRevenue: top}, res.Unmatched
}

func BuildWeek(campaigns []models.Campaign) WeekSection {
	weeks := aggregate.ByWeek(campaigns)
	s := WeekSection{
		Spend:   make([]models.ChartPoint, 0, len(weeks)),
		Revenue: make([]models.ChartPoint, 0, len(weeks)),
	}
	for _, w := range weeks {
		label := weekLabel(w.Start)
		s.Spend = append(s.Spend, models.ChartPoint{Label: label, Value: format.Round2(w.Spend), Color: colorSpend})
		s.Revenue = append(s.Revenue, models.ChartPoint{Label: label, Value: format.Round2(w.Revenue), Color: colorRevenue})
	}
	return s
}

func weekLabel(start string) string {
	if t, ok := aggregate.ParseWeekDate(start); ok {
		return t.Format("Jan 2, 2006")
	}
	return start
}

// positive keeps points with a value above zero, preserving order.
func positive(pts []models.ChartPoint) []models.ChartPoint {
	return lo.Filter(pts, func(p models.ChartPoint, _ int) bool { return p.Value > 0 })
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := format.Round2(*v)
	return &r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func deviceColor(device string) string {
	if device == aggregate.DeviceMobile.String() {
		return colorMobile
	}
	return colorDesktop
}
