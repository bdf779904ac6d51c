package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-4

func TestToDecimalDegrees(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lat   float64
		lon   float64
	}{
		{"exiftool long form", `40 deg 26' 46" N 79 deg 58' 56" W`, 40.4461, -79.9822},
		{"exiftool with comma", `40 deg 26' 46.00" N, 79 deg 58' 56.00" W`, 40.4461, -79.9822},
		{"degree symbols", `33°51′31″S 151°12′51″E`, -33.8586, 151.2142},
		{"longitude first is swapped", `79 deg 58' 56" W, 40 deg 26' 46" N`, 40.4461, -79.9822},
		{"east first is swapped", `151 deg 12' 51" E 33 deg 51' 31" S`, -33.8586, 151.2142},
		{"direction fused with next degrees", `40 26 46 N79 58 56 W`, 40.4461, -79.9822},
		{"degrees only", `48.8584 N, 2.2945 E`, 48.8584, 2.2945},
		{"already decimal", `40.4461, -79.9822`, 40.4461, -79.9822},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fix, err := ToDecimalDegrees(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, fix.Latitude, epsilon)
			assert.InDelta(t, tt.lon, fix.Longitude, epsilon)
		})
	}
}

func TestToDecimalDegreesRejectsOtherGroupCounts(t *testing.T) {
	for _, input := range []string{
		`40 deg 26' 46" N`,
		`40 deg N, 79 deg W, 10 deg E`,
	} {
		_, err := ToDecimalDegrees(input)
		assert.ErrorIs(t, err, ErrCoordinateGroups, input)
	}
}

func TestToDecimalDegreesRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		`N 40 deg W 79 deg`,
		`40 deg 26' 46" N 79 deg 58' 56"`,
		`40 deg 26' 46" X 79 deg W`,
		`40 1 2 3 N 79 W`,
		`40.4461`,
		`abc, 79`,
	} {
		_, err := ToDecimalDegrees(input)
		assert.ErrorIs(t, err, ErrMalformedCoordinate, input)
	}
}

func TestMapURI(t *testing.T) {
	uri := MapURI(Fix{Latitude: 40.5, Longitude: -79.25})
	assert.Equal(t, "https://www.openstreetmap.org/?mlat=40.5&mlon=-79.25&zoom=15", uri)
}

func TestFixString(t *testing.T) {
	assert.Equal(t, "1.5, -2", Fix{Latitude: 1.5, Longitude: -2}.String())
}
