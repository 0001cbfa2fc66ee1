// Package geo holds the fixed region name to coordinate table used for map output.
package geo

import "strings"

type Coordinates struct {
	Lat float64
	Lon float64
}

// Table is a read-only lookup keyed by lowercase region name.
type Table map[string]Coordinates

var cities = Table{
	"new york":      {40.7128, -74.0060},
	"los angeles":   {34.0522, -118.2437},
	"chicago":       {41.8781, -87.6298},
	"houston":       {29.7604, -95.3698},
	"phoenix":       {33.4484, -112.0740},
	"philadelphia":  {39.9526, -75.1652},
	"san antonio":   {29.4241, -98.4936},
	"san diego":     {32.7157, -117.1611},
	"dallas":        {32.7767, -96.7970},
	"san jose":      {37.3382, -121.8863},
	"austin":        {30.2672, -97.7431},
	"san francisco": {37.7749, -122.4194},
	"seattle":       {47.6062, -122.3321},
	"denver":        {39.7392, -104.9903},
	"boston":        {42.3601, -71.0589},
	"miami":         {25.7617, -80.1918},
	"atlanta":       {33.7490, -84.3880},
}

// Cities returns the built-in table.
func Cities() Table { return cities }

// Locate matches key case-insensitively after trimming.
func (t Table) Locate(key string) (lat, lon float64, ok bool) {
	c, ok := t[strings.ToLower(strings.TrimSpace(key))]
	return c.Lat, c.Lon, ok
}
