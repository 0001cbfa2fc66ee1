package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	lat, lon, ok := Cities().Locate("  New York ")
	require.True(t, ok)
	require.Equal(t, 40.7128, lat)
	require.Equal(t, -74.0060, lon)

	_, _, ok = Cities().Locate("atlantis")
	require.False(t, ok)
}

func TestCityKeysAreLowercase(t *testing.T) {
	require.Len(t, Cities(), 17)
	for k := range Cities() {
		_, _, ok := Cities().Locate(k)
		require.True(t, ok, k)
	}
}
