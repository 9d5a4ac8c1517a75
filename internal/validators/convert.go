package validators

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Query parameter names.
const (
	CurrencyParam = "currency"
	ValueParam    = "value"
)

// Error variables
var (
	ErrParamsNotSpecified   = errors.New("params not specified")
	ErrCurrencyNotSpecified = errors.New("currency not specified")
	ErrValueNotSpecified    = errors.New("value not specified")
	ErrInvalidNumber        = errors.New("value is not a number")
)

// ParseConvertQuery validates a raw URL query string and returns the conversion request it describes.
// Repeated keys resolve to their first non-empty occurrence.
func ParseConvertQuery(rawQuery string) (*models.ConvertRequest, error) {
	if rawQuery == "" {
		return nil, ErrParamsNotSpecified
	}

	args := parseQuery(rawQuery)

	currency := args[CurrencyParam]
	if currency == "" {
		return nil, ErrCurrencyNotSpecified
	}

	rawValue := args[ValueParam]
	if rawValue == "" {
		return nil, ErrValueNotSpecified
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w, value is '%s'", ErrInvalidNumber, rawValue)
	}

	return &models.ConvertRequest{
		Currency: currency,
		Amount:   amount,
	}, nil
}

// parseQuery splits key=value pairs joined by '&'. Each key maps to its first
// non-empty value; pairs without '=' or with an empty value are skipped.
// A pair that fails to unescape keeps its literal text.
func parseQuery(rawQuery string) map[string]string {
	args := make(map[string]string)

	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}

		key, value = unescape(key), unescape(value)
		if value == "" {
			continue
		}
		if _, seen := args[key]; !seen {
			args[key] = value
		}
	}

	return args
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return strings.ReplaceAll(s, "+", " ")
}
