package models

// Payload is the body returned by the campaigns endpoint.
type Payload struct {
	Campaigns List[Campaign] `json:"campaigns"`
}

type Campaign struct {
	ID          Text `json:"id"`
	Name        Text `json:"name"`
	Spend       Num  `json:"spend"`
	Revenue     Num  `json:"revenue"`
	Impressions Num  `json:"impressions"`
	Clicks      Num  `json:"clicks"`
	Conversions Num  `json:"conversions"`

	DemographicBreakdown List[Segment]    `json:"demographic_breakdown"`
	DevicePerformance    List[DeviceStat] `json:"device_performance"`
	RegionalPerformance  List[RegionStat] `json:"regional_performance"`
	WeeklyPerformance    List[WeekStat]   `json:"weekly_performance"`
}

// Segment is an age×gender slice of a campaign audience. It carries counts
// but no spend of its own.
type Segment struct {
	AgeGroup             Text               `json:"age_group"`
	Gender               Text               `json:"gender"`
	PercentageOfAudience Num                `json:"percentage_of_audience"`
	Performance          SegmentPerformance `json:"performance"`
}

type SegmentPerformance struct {
	Impressions Num `json:"impressions"`
	Clicks      Num `json:"clicks"`
	Conversions Num `json:"conversions"`
}

type DeviceStat struct {
	Device      Text `json:"device"`
	Impressions Num  `json:"impressions"`
	Clicks      Num  `json:"clicks"`
	Conversions Num  `json:"conversions"`
	Spend       Num  `json:"spend"`
	Revenue     Num  `json:"revenue"`
}

type RegionStat struct {
	Region  Text `json:"region"`
	Country Text `json:"country"`
	Spend   Num  `json:"spend"`
	Revenue Num  `json:"revenue"`
}

type WeekStat struct {
	WeekStart Text `json:"week_start"`
	WeekEnd   Text `json:"week_end"`
	Spend     Num  `json:"spend"`
	Revenue   Num  `json:"revenue"`
}

// Card is a single headline figure. Value is either a preformatted string or a number.
type Card struct {
	Title string `json:"title"`
	Value any    `json:"value"`
}

// ChartPoint is one bar or line vertex.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

type MapPoint struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Subtitle  string  `json:"subtitle,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Value     float64 `json:"value"`
	Color     string  `json:"color,omitempty"`
}

// AgeRow backs the age table.
type AgeRow struct {
	AgeGroup       string  `json:"age_group"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

type GenderAgeRow struct {
	Gender         string  `json:"gender"`
	AgeGroup       string  `json:"age_group"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

type DeviceRow struct {
	Device         string   `json:"device"`
	Impressions    int64    `json:"impressions"`
	Clicks         int64    `json:"clicks"`
	Conversions    int64    `json:"conversions"`
	Spend          float64  `json:"spend"`
	Revenue        float64  `json:"revenue"`
	CTR            float64  `json:"ctr"`
	ConversionRate float64  `json:"conversion_rate"`
	ROAS           *float64 `json:"roas"`
	TrafficShare   float64  `json:"traffic_share"`
}

type CampaignRow struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Impressions    int64    `json:"impressions"`
	Clicks         int64    `json:"clicks"`
	Conversions    int64    `json:"conversions"`
	Spend          float64  `json:"spend"`
	Revenue        float64  `json:"revenue"`
	CTR            float64  `json:"ctr"`
	ConversionRate float64  `json:"conversion_rate"`
	ROAS           *float64 `json:"roas"`
}
