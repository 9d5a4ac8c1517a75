package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validators"
	"go.uber.org/zap"
)

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

// ConvertPath is the route of the conversion endpoint.
const ConvertPath = "/convert"

// Converter defines the interface that the conversion service must implement.
type Converter interface {
	Convert(ctx context.Context, req *models.ConvertRequest) (float64, error)
}

// NewConvertHandler returns an HTTP handler converting an amount of foreign currency into the base currency.
// @Summary Convert currency
// @Description Converts value units of currency into roubles using the daily rates of the Central Bank of Russia
// @Tags convert
// @Produce json
// @Param currency query string true "Currency code, case insensitive" example(usd)
// @Param value query number true "Amount to convert" example(2)
// @Success 200 {object} models.ConvertResponse "Converted amount"
// @Failure 400 {object} models.ConvertErrorResponse "Invalid query"
// @Failure 500 {object} models.ConvertErrorResponse "Rates unavailable"
// @Router /convert [get]
func NewConvertHandler(svc Converter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID, _ := middlewares.RequestIDFromContext(r.Context())
		log := log.With("request_id", reqID)

		log.Debugw("convert query", "query", r.URL.RawQuery)

		req, err := validators.ParseConvertQuery(r.URL.RawQuery)
		if err != nil {
			log.Warnw("validate params error", "error", err)
			writeJSON(w, http.StatusBadRequest, models.ConvertErrorResponse{
				Reason: err.Error(),
			})
			return
		}

		value, err := svc.Convert(r.Context(), req)
		if err != nil {
			log.Errorw("conversion failed", "currency", req.Currency, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.ConvertErrorResponse{
				Reason: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, models.ConvertResponse{
			Value: value,
		})
	}
}

// RegisterConvertHandler registers the conversion route
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Get(ConvertPath, h)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
