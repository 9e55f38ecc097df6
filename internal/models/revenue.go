package models

type Receipt struct {
	Data          string `json:"data,omitempty"`
	Signature     string `json:"signature,omitempty"`
	TransactionID string `json:"transactionID,omitempty"`
}

type Revenue struct {
	Price     float64           `json:"price"`
	Currency  string            `json:"currency"`
	ProductID string            `json:"productID,omitempty"`
	Quantity  int               `json:"quantity,omitempty"`
	Payload   map[string]string `json:"payload,omitempty"`
	Receipt   *Receipt          `json:"receipt,omitempty"`
}

type AdType string

const (
	AdTypeUnknown      AdType = "UNKNOWN"
	AdTypeNative       AdType = "NATIVE"
	AdTypeBanner       AdType = "BANNER"
	AdTypeRewarded     AdType = "REWARDED"
	AdTypeInterstitial AdType = "INTERSTITIAL"
	AdTypeMrec         AdType = "MREC"
	AdTypeAppOpen      AdType = "APP_OPEN"
	AdTypeOther        AdType = "OTHER"
)

type AmountKind int

const (
	AmountKindFloat AmountKind = iota
	AmountKindString
	AmountKindMicros
)

// Amount is a monetary value in one of the shapes callers tend to have at
// hand. The zero value is a float amount of 0.
type Amount struct {
	Kind   AmountKind
	Float  float64
	String string
	Micros int64
}

func AmountFloat(v float64) Amount {
	return Amount{Kind: AmountKindFloat, Float: v}
}

func AmountString(v string) Amount {
	return Amount{Kind: AmountKindString, String: v}
}

func AmountMicros(v int64) Amount {
	return Amount{Kind: AmountKindMicros, Micros: v}
}

type AdRevenue struct {
	Price           Amount
	Currency        string
	Payload         map[string]string
	AdNetwork       string
	AdPlacementID   string
	AdPlacementName string
	AdType          AdType
	AdUnitID        string
	AdUnitName      string
	Precision       string
}

// CanonicalAdRevenue is the only ad-revenue shape the native layer accepts.
type CanonicalAdRevenue struct {
	Price           float64           `json:"price"`
	Currency        string            `json:"currency"`
	Payload         map[string]string `json:"payload,omitempty"`
	AdNetwork       string            `json:"adNetwork,omitempty"`
	AdPlacementID   string            `json:"adPlacementId,omitempty"`
	AdPlacementName string            `json:"adPlacementName,omitempty"`
	AdType          AdType            `json:"adType,omitempty"`
	AdUnitID        string            `json:"adUnitId,omitempty"`
	AdUnitName      string            `json:"adUnitName,omitempty"`
	Precision       string            `json:"precision,omitempty"`
}
