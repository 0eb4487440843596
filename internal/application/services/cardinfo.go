package services

import (
	"context"
	"log/slog"

	"github.com/finverse-labs/cardinfo-service/internal/application"
	"github.com/finverse-labs/cardinfo-service/internal/validation"
)

// CardInfoService runs the structural validations and, when both pass,
// enriches the query through the BIN-lookup port.
type CardInfoService struct {
	validator *validation.Validator
	lookup    application.LookupClient
	logger    *slog.Logger
}

func NewCardInfoService(validator *validation.Validator, lookup application.LookupClient, logger *slog.Logger) *CardInfoService {
	return &CardInfoService{
		validator: validator,
		lookup:    lookup,
		logger:    logger,
	}
}

// Inspection is the outcome of one card-info request. Validation is
// populated on every path, Record only on full success.
type Inspection struct {
	Query      application.CardQuery
	Validation application.ValidationResult
	Record     *application.BinRecord
}

// Inspect always computes both checks before deciding the outcome; only the
// response short-circuits, not the computation. A non-nil Inspection is
// returned alongside validation errors so the caller can still report both
// booleans.
func (s *CardInfoService) Inspect(ctx context.Context, query application.CardQuery) (*Inspection, error) {
	inspection := &Inspection{
		Query: query,
		Validation: application.ValidationResult{
			LuhnValid:   s.validator.CardNumberValid(query.CardNumber),
			ExpiryValid: s.validator.ExpiryValid(query.ExpiryMonth, query.ExpiryYear),
		},
	}

	if !inspection.Validation.LuhnValid {
		return inspection, application.NewChecksumInvalidError()
	}
	if !inspection.Validation.ExpiryValid {
		return inspection, application.NewExpiryInvalidError()
	}

	record, err := s.lookup.Lookup(ctx, query.BIN)
	if err != nil {
		s.logger.Error("bin lookup failed", "bin", query.BIN, "error", err)
		return inspection, err
	}

	inspection.Record = record
	return inspection, nil
}
