package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrica-go/metrica/internal/models"
)

func TestEncodeNil(t *testing.T) {
	var loc *models.Location
	var attrs map[string]any

	for _, v := range []any{nil, loc, attrs} {
		got, err := Encode("value", v)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestEncodeLocation(t *testing.T) {
	alt := 120.0
	got, err := Encode("location", &models.Location{Latitude: 55.75, Longitude: 37.61, Altitude: &alt})
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":55.75,"longitude":37.61,"altitude":120}`, got)
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode("attributes", map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode attributes")
}

func TestDecodeRoundTrip(t *testing.T) {
	var p models.StartupParams
	require.NoError(t, Decode("startup params", `{"deviceId":"d","uuid":"u"}`, &p))
	assert.Equal(t, models.StartupParams{DeviceID: "d", UUID: "u"}, p)

	var empty models.StartupParams
	require.NoError(t, Decode("startup params", "", &empty))
	assert.Zero(t, empty)

	assert.Error(t, Decode("startup params", "{", &empty))
}

func TestOptional(t *testing.T) {
	v := "x"
	assert.Equal(t, "x", Optional(&v))
	assert.Equal(t, "", Optional(nil))
}
