package payload

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"

	"github.com/metrica-go/metrica/internal/models"
)

const microsPerUnit = 1_000_000

// NormalizeAdRevenue folds the accepted amount shapes into a float price and
// canonicalizes the currency code. A malformed decimal string yields 0.
func NormalizeAdRevenue(r models.AdRevenue) models.CanonicalAdRevenue {
	return models.CanonicalAdRevenue{
		Price:           Price(r.Price),
		Currency:        CurrencyCode(r.Currency),
		Payload:         r.Payload,
		AdNetwork:       r.AdNetwork,
		AdPlacementID:   r.AdPlacementID,
		AdPlacementName: r.AdPlacementName,
		AdType:          r.AdType,
		AdUnitID:        r.AdUnitID,
		AdUnitName:      r.AdUnitName,
		Precision:       r.Precision,
	}
}

func Price(a models.Amount) float64 {
	switch a.Kind {
	case models.AmountKindString:
		v, err := strconv.ParseFloat(strings.TrimSpace(a.String), 64)
		if err != nil {
			return 0
		}
		return v
	case models.AmountKindMicros:
		return float64(a.Micros) / microsPerUnit
	default:
		return a.Float
	}
}

// CurrencyCode returns the ISO 4217 form of code. Codes unknown to the
// currency table are trimmed and upper-cased as-is.
func CurrencyCode(code string) string {
	code = strings.TrimSpace(code)
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return strings.ToUpper(code)
}
