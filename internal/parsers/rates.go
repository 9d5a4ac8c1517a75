package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// payloadPreviewSize limits how much of a broken payload ends up in error messages.
const payloadPreviewSize = 500

// Error variables
var (
	ErrDecode          = errors.New("exchanges server response decode error")
	ErrUnknownCurrency = errors.New("no information on the rate of this currency")
	ErrRateConversion  = errors.New("rate converting error")
)

// Keys of the daily rates document, matched exactly:
//
//	{"Valute": {"USD": {"Value": 75.0, ...}, ...}}
const (
	tableKey = "Valute"
	rateKey  = "Value"
)

// ExtractRate parses a daily rates payload and returns the rate of the given currency.
// The currency code is matched case-insensitively.
func ExtractRate(payload []byte, currency string) (float64, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return 0, decodeError(err, payload)
	}

	var table map[string]json.RawMessage
	if rawTable, ok := doc[tableKey]; ok {
		if err := json.Unmarshal(rawTable, &table); err != nil {
			return 0, decodeError(err, payload)
		}
	}
	if table == nil {
		return 0, decodeError(fmt.Errorf("missing %q object", tableKey), payload)
	}

	entry, ok := table[strings.ToUpper(currency)]
	if !ok {
		return 0, ErrUnknownCurrency
	}

	var rec map[string]json.RawMessage
	if err := json.Unmarshal(entry, &rec); err != nil {
		return 0, ErrUnknownCurrency
	}
	raw := bytes.TrimSpace(rec[rateKey])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return 0, ErrUnknownCurrency
	}

	rate, err := parseRate(raw)
	if err == nil && (math.IsNaN(rate) || math.IsInf(rate, 0)) {
		err = errors.New("rate is not finite")
	}
	if err != nil {
		return 0, fmt.Errorf("%w %v [%s]", ErrRateConversion, err, raw)
	}

	// A zero rate carries no information, the feed uses it for absent quotes.
	if rate == 0 {
		return 0, ErrUnknownCurrency
	}

	return rate, nil
}

// parseRate accepts a JSON number or a string holding one.
func parseRate(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, errors.New("unsupported rate literal")
	}
	return f, nil
}

func decodeError(err error, payload []byte) error {
	preview := payload
	if len(preview) > payloadPreviewSize {
		preview = preview[:payloadPreviewSize]
	}
	return fmt.Errorf("%w, %v [%s]", ErrDecode, err, preview)
}
