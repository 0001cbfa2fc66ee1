package aggregate

import "github.com/AngelCh415/campaign-insights/internal/models"

type DeviceSummary struct {
	Device string `json:"device"`
	Metrics
	Derived
}

// DeviceTotals always carries both devices, zero-valued when absent from the feed.
type DeviceTotals struct {
	Mobile  DeviceSummary `json:"mobile"`
	Desktop DeviceSummary `json:"desktop"`
}

// All returns the devices in display order.
func (d DeviceTotals) All() []DeviceSummary { return []DeviceSummary{d.Mobile, d.Desktop} }

// ByDevice sums device records verbatim; they carry their own spend and revenue.
// Unrecognized device labels are dropped.
func ByDevice(campaigns []models.Campaign) DeviceTotals {
	var mobile, desktop Metrics
	for _, c := range campaigns {
		for _, d := range c.DevicePerformance {
			m := Metrics{
				Spend:       d.Spend.Float(),
				Revenue:     d.Revenue.Float(),
				Impressions: d.Impressions.Float(),
				Clicks:      d.Clicks.Float(),
				Conversions: d.Conversions.Float(),
			}
			switch ParseDevice(d.Device.String()) {
			case DeviceMobile:
				mobile = mobile.Add(m)
			case DeviceDesktop:
				desktop = desktop.Add(m)
			}
		}
	}
	total := mobile.Clicks + desktop.Clicks
	return DeviceTotals{
		Mobile:  DeviceSummary{Device: DeviceMobile.String(), Metrics: mobile, Derived: Derive(mobile, total)},
		Desktop: DeviceSummary{Device: DeviceDesktop.String(), Metrics: desktop, Derived: Derive(desktop, total)},
	}
}
