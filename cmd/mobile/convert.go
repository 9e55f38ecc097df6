package mobile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/payload"
)

// nativeError is an exception raised on the native side, passed in as
// {"name": ..., "message": ..., "stack": [...]}.
type nativeError struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Stack   []string `json:"stack"`
}

func (e *nativeError) Error() string        { return e.Message }
func (e *nativeError) ErrorName() string    { return e.Name }
func (e *nativeError) ErrorStack() []string { return e.Stack }

func decodeError(errorJSON string) (error, error) {
	if errorJSON == "" {
		return nil, nil
	}
	var e nativeError
	if err := payload.Decode("error", errorJSON, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// decodeReason reads a reason that is either an exception (it has a
// "name" and a "message") or an arbitrary JSON value.
func decodeReason(reasonJSON string) (any, error) {
	if reasonJSON == "" {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if json.Unmarshal([]byte(reasonJSON), &fields) == nil {
		_, hasName := fields["name"]
		_, hasMessage := fields["message"]
		if hasName && hasMessage {
			return decodeError(reasonJSON)
		}
	}
	var v any
	if err := payload.Decode("error reason", reasonJSON, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type adRevenueWire struct {
	Price           json.RawMessage   `json:"price"`
	PriceMicros     *int64            `json:"priceMicros,omitempty"`
	Currency        string            `json:"currency"`
	Payload         map[string]string `json:"payload,omitempty"`
	AdNetwork       string            `json:"adNetwork,omitempty"`
	AdPlacementID   string            `json:"adPlacementId,omitempty"`
	AdPlacementName string            `json:"adPlacementName,omitempty"`
	AdType          metrica.AdType    `json:"adType,omitempty"`
	AdUnitID        string            `json:"adUnitId,omitempty"`
	AdUnitName      string            `json:"adUnitName,omitempty"`
	Precision       string            `json:"precision,omitempty"`
}

// decodeAdRevenue accepts price as a JSON number or string, or priceMicros
// as an integer.
func decodeAdRevenue(data string) (metrica.AdRevenue, error) {
	var in adRevenueWire
	if err := payload.Decode("ad revenue", data, &in); err != nil {
		return metrica.AdRevenue{}, err
	}

	out := metrica.AdRevenue{
		Currency:        in.Currency,
		Payload:         in.Payload,
		AdNetwork:       in.AdNetwork,
		AdPlacementID:   in.AdPlacementID,
		AdPlacementName: in.AdPlacementName,
		AdType:          in.AdType,
		AdUnitID:        in.AdUnitID,
		AdUnitName:      in.AdUnitName,
		Precision:       in.Precision,
	}

	raw := bytes.TrimSpace(in.Price)
	switch {
	case in.PriceMicros != nil:
		out.Price = metrica.AmountMicros(*in.PriceMicros)
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		out.Price = metrica.AmountFloat(0)
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return metrica.AdRevenue{}, fmt.Errorf("decode ad revenue price: %w", err)
		}
		out.Price = metrica.AmountString(s)
	default:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return metrica.AdRevenue{}, fmt.Errorf("decode ad revenue price: %w", err)
		}
		out.Price = metrica.AmountFloat(f)
	}
	return out, nil
}

// optional maps the empty string to an absent value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
