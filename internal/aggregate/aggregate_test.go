package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/campaign-insights/internal/models"
)

func campaigns(t *testing.T, raw string) []models.Campaign {
	t.Helper()
	var p models.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p.Campaigns
}

// two campaigns: A splits by audience percentage, B has no percentages at all
const scenario = `{"campaigns":[
  {"id":"A","spend":100,"revenue":300,"demographic_breakdown":[
    {"gender":"male","age_group":"18-24","percentage_of_audience":60,"performance":{"impressions":1000,"clicks":50,"conversions":5}},
    {"gender":"female","age_group":"25-34","percentage_of_audience":40,"performance":{"impressions":800,"clicks":40,"conversions":2}}
  ]},
  {"id":"B","spend":50,"revenue":80,"demographic_breakdown":[
    {"gender":"male","age_group":"18-24","performance":{"impressions":500,"clicks":10,"conversions":1}}
  ]}
]}`

func TestScenarioAgeAndGender(t *testing.T) {
	cs := campaigns(t, scenario)

	byAge := ByAge(cs)
	require.InDelta(t, 110, byAge["18-24"].Spend, 1e-9)
	require.InDelta(t, 40, byAge["25-34"].Spend, 1e-9)
	require.InDelta(t, 180+80, byAge["18-24"].Revenue, 1e-9)
	require.Equal(t, 1500.0, byAge["18-24"].Impressions)
	require.Equal(t, 60.0, byAge["18-24"].Clicks)
	require.Equal(t, 6.0, byAge["18-24"].Conversions)

	ga := ByGenderAge(cs)
	require.InDelta(t, 110, ga.Male["18-24"].Spend, 1e-9)
	require.InDelta(t, 40, ga.Female["25-34"].Spend, 1e-9)
	require.NotContains(t, ga.Male, "25-34")

	g := ByGender(cs)
	require.InDelta(t, 110, g.Male.Spend, 1e-9)
	require.InDelta(t, 40, g.Female.Spend, 1e-9)
	require.Equal(t, 60.0, g.Male.Clicks)
	require.Equal(t, 40.0, g.Female.Clicks)
}

func TestSharesPartitionCampaignTotal(t *testing.T) {
	cases := map[string]string{
		"percentages": `{"campaigns":[{"spend":123.45,"demographic_breakdown":[
			{"age_group":"18-24","percentage_of_audience":33.3},
			{"age_group":"25-34","percentage_of_audience":33.3},
			{"age_group":"35-44","percentage_of_audience":12.1},
			{"age_group":"55+","percentage_of_audience":"7"}]}]}`,
		"uniform": `{"campaigns":[{"spend":123.45,"demographic_breakdown":[
			{"age_group":"18-24"},{"age_group":"25-34"},{"age_group":"35-44"}]}]}`,
		"zero percentages": `{"campaigns":[{"spend":123.45,"demographic_breakdown":[
			{"age_group":"18-24","percentage_of_audience":0},{"age_group":"25-34","percentage_of_audience":-5}]}]}`,
		"huge percentages": `{"campaigns":[{"spend":123.45,"demographic_breakdown":[
			{"age_group":"18-24","percentage_of_audience":1e308},{"age_group":"25-34","percentage_of_audience":1e308}]}]}`,
		"partial percentages": `{"campaigns":[{"spend":123.45,"demographic_breakdown":[
			{"age_group":"18-24","percentage_of_audience":50},{"age_group":"25-34"}]}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var sum float64
			for _, m := range ByAge(campaigns(t, raw)) {
				sum += m.Spend
			}
			require.InDelta(t, 123.45, sum, 1e-9)
		})
	}
}

func TestSharesUniformFallback(t *testing.T) {
	segs := []models.Segment{{}, {}, {}, {}}
	for _, s := range Shares(segs) {
		require.InDelta(t, 0.25, s, 1e-12)
	}
	require.Empty(t, Shares(nil))
}

func TestSharesHugeWeights(t *testing.T) {
	segs := []models.Segment{{PercentageOfAudience: 1e308}, {PercentageOfAudience: 1e308}, {PercentageOfAudience: 5e307}}
	shares := Shares(segs)
	require.InDelta(t, 0.4, shares[0], 1e-12)
	require.InDelta(t, 0.4, shares[1], 1e-12)
	require.InDelta(t, 0.2, shares[2], 1e-12)
}

func TestAggregationIsIdempotent(t *testing.T) {
	cs := campaigns(t, scenario)
	require.Equal(t, ByAge(cs), ByAge(cs))
	require.Equal(t, ByGender(cs), ByGender(cs))
	require.Equal(t, ByGenderAge(cs), ByGenderAge(cs))
	require.Equal(t, ByDevice(cs), ByDevice(cs))
	require.Equal(t, ByWeek(cs), ByWeek(cs))
}

func TestUnrecognizedGenderStillCountsForAge(t *testing.T) {
	cs := campaigns(t, `{"campaigns":[{"spend":90,"demographic_breakdown":[
		{"gender":" MALE ","age_group":"18-24","performance":{"clicks":1}},
		{"gender":"other","age_group":"18-24","performance":{"clicks":2}},
		{"age_group":"18-24","performance":{"clicks":4}}]}]}`)

	g := ByGender(cs)
	require.Equal(t, 1.0, g.Male.Clicks)
	require.InDelta(t, 30, g.Male.Spend, 1e-9)
	require.Zero(t, g.Female.Clicks)

	require.Equal(t, 7.0, ByAge(cs)["18-24"].Clicks)
	require.InDelta(t, 90, ByAge(cs)["18-24"].Spend, 1e-9)
}

func TestMissingAgeGroupIsUnknown(t *testing.T) {
	cs := campaigns(t, `{"campaigns":[{"spend":10,"demographic_breakdown":[{"gender":"female"},{"age_group":"  ","gender":"female"}]}]}`)
	byAge := ByAge(cs)
	require.Len(t, byAge, 1)
	require.InDelta(t, 10, byAge[UnknownAgeGroup].Spend, 1e-9)
}

func TestAgeOrder(t *testing.T) {
	byAge := map[string]Metrics{"55+": {}, "18-24": {}, "Teen": {}}
	require.Equal(t,
		[]string{"18-24", "25-34", "35-44", "45-54", "55+", "Teen"},
		AgeOrder(byAge))

	require.Equal(t,
		[]string{"18-24", "25-34", "35-44", "45-54", "55+", "13-17", "Unknown"},
		AgeOrder(map[string]Metrics{"Unknown": {}, "13-17": {}}))
}

func TestByDeviceIgnoresUnknownDevices(t *testing.T) {
	cs := campaigns(t, `{"campaigns":[
		{"device_performance":[
			{"device":"Mobile","impressions":1000,"clicks":30,"conversions":3,"spend":60,"revenue":120},
			{"device":"tablet","impressions":999,"clicks":99,"conversions":9,"spend":99,"revenue":99},
			{"device":" DESKTOP ","impressions":500,"clicks":10,"conversions":0,"spend":0,"revenue":0}]},
		{"device_performance":[{"device":"mobile","impressions":1000,"clicks":30,"conversions":1,"spend":40,"revenue":30}]}
	]}`)
	d := ByDevice(cs)

	require.Equal(t, "mobile", d.Mobile.Device)
	require.Equal(t, 2000.0, d.Mobile.Impressions)
	require.Equal(t, 60.0, d.Mobile.Clicks)
	require.Equal(t, 100.0, d.Mobile.Spend)
	require.InDelta(t, 3.0, d.Mobile.CTR, 1e-9)
	require.InDelta(t, 100.0*4/60, d.Mobile.ConversionRate, 1e-9)
	require.NotNil(t, d.Mobile.ROAS)
	require.InDelta(t, 1.5, *d.Mobile.ROAS, 1e-9)
	require.InDelta(t, 100.0*60/70, d.Mobile.TrafficShare, 1e-9)

	require.Equal(t, 500.0, d.Desktop.Impressions)
	require.Nil(t, d.Desktop.ROAS)
	require.InDelta(t, 100.0*10/70, d.Desktop.TrafficShare, 1e-9)
}

func TestByDeviceEmpty(t *testing.T) {
	d := ByDevice(nil)
	require.Equal(t, "mobile", d.Mobile.Device)
	require.Equal(t, "desktop", d.Desktop.Device)
	require.Zero(t, d.Mobile.TrafficShare)
	require.Nil(t, d.Mobile.ROAS)
	require.Len(t, d.All(), 2)
}

type fakeLocator map[string][2]float64

func (f fakeLocator) Locate(key string) (float64, float64, bool) {
	c, ok := f[key]
	return c[0], c[1], ok
}

func TestByRegion(t *testing.T) {
	loc := fakeLocator{"chicago": {41.8, -87.6}, "miami": {25.7, -80.1}}
	cs := campaigns(t, `{"campaigns":[
		{"regional_performance":[
			{"region":"Chicago","country":"US","spend":10,"revenue":20},
			{"region":"Atlantis","spend":5,"revenue":500},
			{"region":"Miami","country":"US","spend":1,"revenue":30}]},
		{"regional_performance":[
			{"region":" chicago ","country":"USA","spend":10,"revenue":20},
			{"region":"ATLANTIS","spend":5,"revenue":5},
			{"region":"","spend":1,"revenue":1}]}
	]}`)

	res := ByRegion(cs, loc)
	require.Len(t, res.Regions, 2)
	require.Equal(t, "chicago", res.Regions[0].Key)
	require.Equal(t, "Chicago", res.Regions[0].Name)
	require.Equal(t, "US", res.Regions[0].Country)
	require.Equal(t, 41.8, res.Regions[0].Latitude)
	require.Equal(t, 20.0, res.Regions[0].Spend)
	require.Equal(t, 40.0, res.Regions[0].Revenue)
	require.Equal(t, "miami", res.Regions[1].Key)
	require.Equal(t, []string{"Atlantis"}, res.Unmatched)
}

func TestByWeekMergesLiteralPairsAndSorts(t *testing.T) {
	cs := campaigns(t, `{"campaigns":[
		{"weekly_performance":[
			{"week_start":"2024-01-15","week_end":"2024-01-21","spend":10,"revenue":20},
			{"week_start":"2024-01-01","week_end":"2024-01-07","spend":1,"revenue":2},
			{"week_start":"not a date","week_end":"?","spend":3,"revenue":3}]},
		{"weekly_performance":[
			{"week_start":"2024-01-15","week_end":"2024-01-21","spend":5,"revenue":"5"},
			{"week_start":"2024-01-15T00:00:00Z","week_end":"2024-01-21","spend":7,"revenue":7}]}
	]}`)

	weeks := ByWeek(cs)
	require.Len(t, weeks, 4)
	require.Equal(t, "2024-01-01", weeks[0].Start)
	require.Equal(t, "2024-01-15", weeks[1].Start)
	require.Equal(t, 15.0, weeks[1].Spend)
	require.Equal(t, 25.0, weeks[1].Revenue)
	require.Equal(t, "2024-01-15T00:00:00Z", weeks[2].Start)
	require.Equal(t, "not a date", weeks[3].Start)
}

func TestDerivedZeroDenominators(t *testing.T) {
	d := Derive(Metrics{}, 0)
	require.Zero(t, d.CTR)
	require.Zero(t, d.ConversionRate)
	require.Zero(t, d.TrafficShare)
	require.Nil(t, d.ROAS)

	roas := ROAS(0, 10)
	require.NotNil(t, roas)
	require.Zero(t, *roas)
	require.Nil(t, ROAS(10, -1))
	require.InDelta(t, 5.0, CTR(5, 100), 1e-12)
}

func TestParseCategories(t *testing.T) {
	require.Equal(t, GenderFemale, ParseGender(" Female"))
	require.Equal(t, GenderUnrecognized, ParseGender("f"))
	require.Equal(t, DeviceDesktop, ParseDevice("DESKTOP"))
	require.Equal(t, DeviceUnrecognized, ParseDevice("tablet"))
}

func TestEmptyInput(t *testing.T) {
	require.Empty(t, ByAge(nil))
	require.Empty(t, ByWeek(nil))
	require.Empty(t, ByRegion(nil, fakeLocator{}).Regions)
	require.Equal(t, GenderTotals{}, ByGender(nil))
	require.Equal(t, Metrics{}, Totals(nil))
}
