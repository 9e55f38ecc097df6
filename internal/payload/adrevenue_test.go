package payload

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrica-go/metrica/internal/models"
)

func TestNormalizeAdRevenueShapesAreEquivalent(t *testing.T) {
	base := models.AdRevenue{
		Currency:  "usd",
		AdNetwork: "admob",
		AdType:    models.AdTypeBanner,
		Payload:   map[string]string{"k": "v"},
	}

	shapes := []models.Amount{
		models.AmountFloat(1.5),
		models.AmountString("1.5"),
		models.AmountString(" 1.50 "),
		models.AmountMicros(1_500_000),
	}

	var want string
	for i, shape := range shapes {
		r := base
		r.Price = shape
		got, err := Encode("ad revenue", NormalizeAdRevenue(r))
		require.NoError(t, err)
		if i == 0 {
			want = got
			continue
		}
		assert.Equal(t, want, got, "shape %d", i)
	}
	assert.JSONEq(t,
		`{"price":1.5,"currency":"USD","payload":{"k":"v"},"adNetwork":"admob","adType":"BANNER"}`,
		want,
	)
}

func TestNormalizeAdRevenueKeepsAmount(t *testing.T) {
	got := NormalizeAdRevenue(models.AdRevenue{
		Price:    models.AmountFloat(1.5),
		Currency: "usd",
	})
	assert.Equal(t, 1.5, got.Price)
	assert.Equal(t, "USD", got.Currency)
}

func TestPriceMalformedString(t *testing.T) {
	assert.Equal(t, 0.0, Price(models.AmountString("one dollar")))
	assert.Equal(t, 0.0, Price(models.AmountString("")))
}

func TestPriceMicros(t *testing.T) {
	assert.Equal(t, 0.000001, Price(models.AmountMicros(1)))
	assert.True(t, math.Signbit(Price(models.AmountMicros(-2_000_000))))
}

func TestCurrencyCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"usd", "USD"},
		{" eur ", "EUR"},
		{"RUB", "RUB"},
		{"xyz1", "XYZ1"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrencyCode(tt.in))
		})
	}
}
