package aggregate

// Derived holds ratios computed once from an accumulated Metrics value.
// ROAS is nil when spend is not positive.
type Derived struct {
	CTR            float64  `json:"ctr"`
	ConversionRate float64  `json:"conversion_rate"`
	ROAS           *float64 `json:"roas"`
	TrafficShare   float64  `json:"traffic_share"`
}

// Derive computes every ratio for m; totalClicks is the click total of m's dimension.
func Derive(m Metrics, totalClicks float64) Derived {
	return Derived{
		CTR:            CTR(m.Clicks, m.Impressions),
		ConversionRate: ConversionRate(m.Conversions, m.Clicks),
		ROAS:           ROAS(m.Revenue, m.Spend),
		TrafficShare:   TrafficShare(m.Clicks, totalClicks),
	}
}

// CTR is clicks per impression, in percent.
func CTR(clicks, impressions float64) float64 { return percent(clicks, impressions) }

// ConversionRate is conversions per click, in percent.
func ConversionRate(conversions, clicks float64) float64 { return percent(conversions, clicks) }

// TrafficShare is a bucket's fraction of its dimension's clicks, in percent.
func TrafficShare(clicks, totalClicks float64) float64 { return percent(clicks, totalClicks) }

// ROAS is revenue per unit of spend. A nil result means "not computable",
// which is distinct from a zero return.
func ROAS(revenue, spend float64) *float64 {
	if spend <= 0 {
		return nil
	}
	r := revenue / spend
	return &r
}

func percent(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}
