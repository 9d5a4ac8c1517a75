package services

import (
	"context"
	"errors"
	"math"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/parsers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=services

// DailyRatesReader fetches the raw daily rates document from an external service.
type DailyRatesReader interface {
	GetDailyRates(ctx context.Context) ([]byte, error)
}

var (
	ErrResultOutOfRange = errors.New("conversion result is out of range")
)

// ConvertService converts amounts of foreign currency into the base currency.
type ConvertService struct {
	reader DailyRatesReader
	log    *zap.SugaredLogger
}

// NewConvertService creates a new service instance
func NewConvertService(reader DailyRatesReader, log *zap.SugaredLogger) *ConvertService {
	return &ConvertService{
		reader: reader,
		log:    log,
	}
}

// Convert returns req.Amount expressed in the base currency using today's rate.
func (svc *ConvertService) Convert(ctx context.Context, req *models.ConvertRequest) (float64, error) {
	payload, err := svc.reader.GetDailyRates(ctx)
	if err != nil {
		svc.log.Warnw("daily rates unavailable", "currency", req.Currency, "error", err)
		return 0, err
	}

	rate, err := parsers.ExtractRate(payload, req.Currency)
	if err != nil {
		svc.log.Warnw("failed to extract rate", "currency", req.Currency, "error", err)
		return 0, err
	}

	result := req.Amount * rate
	if math.IsInf(result, 0) || math.IsNaN(result) {
		svc.log.Warnw("conversion overflow", "currency", req.Currency, "amount", req.Amount, "rate", rate)
		return 0, ErrResultOutOfRange
	}

	svc.log.Debugw("converted",
		"currency", req.Currency,
		"amount", req.Amount,
		"rate", rate,
		"result", result,
	)

	return result, nil
}
