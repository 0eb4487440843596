package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finverse-labs/cardinfo-service/internal/application"
	"github.com/finverse-labs/cardinfo-service/internal/application/services"
	"github.com/finverse-labs/cardinfo-service/internal/infrastructure/binlist"
	"github.com/finverse-labs/cardinfo-service/internal/validation"
)

type stubLookupClient struct {
	calls   int
	lastBIN string
	record  *application.BinRecord
	err     error
}

func (s *stubLookupClient) Lookup(_ context.Context, bin string) (*application.BinRecord, error) {
	s.calls++
	s.lastBIN = bin
	return s.record, s.err
}

func newService(lookup application.LookupClient) *services.CardInfoService {
	validator := validation.NewWithClock(func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewCardInfoService(validator, lookup, logger)
}

func TestInspect_Success(t *testing.T) {
	scheme := "visa"
	stub := &stubLookupClient{record: &application.BinRecord{Scheme: &scheme}}
	svc := newService(stub)

	inspection, err := svc.Inspect(context.Background(), application.CardQuery{
		BIN:         "457173",
		CardNumber:  "4571736000000000",
		ExpiryMonth: "12",
		ExpiryYear:  "28",
	})

	require.NoError(t, err)
	assert.True(t, inspection.Validation.LuhnValid)
	assert.True(t, inspection.Validation.ExpiryValid)
	require.NotNil(t, inspection.Record)
	assert.Equal(t, "visa", *inspection.Record.Scheme)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "457173", stub.lastBIN)
}

func TestInspect_BadChecksumSkipsLookup(t *testing.T) {
	stub := &stubLookupClient{}
	svc := newService(stub)

	inspection, err := svc.Inspect(context.Background(), application.CardQuery{
		BIN:         "457173",
		CardNumber:  "4571736000000001",
		ExpiryMonth: "12",
		ExpiryYear:  "28",
	})

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeChecksumInvalid, svcErr.Code)

	// Both checks are still computed even though the first one failed.
	require.NotNil(t, inspection)
	assert.False(t, inspection.Validation.LuhnValid)
	assert.True(t, inspection.Validation.ExpiryValid)
	assert.Nil(t, inspection.Record)
	assert.Equal(t, 0, stub.calls)
}

func TestInspect_BadExpirySkipsLookup(t *testing.T) {
	stub := &stubLookupClient{}
	svc := newService(stub)

	inspection, err := svc.Inspect(context.Background(), application.CardQuery{
		BIN:         "457173",
		CardNumber:  "4571736000000000",
		ExpiryMonth: "13",
		ExpiryYear:  "28",
	})

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeExpiryInvalid, svcErr.Code)

	assert.True(t, inspection.Validation.LuhnValid)
	assert.False(t, inspection.Validation.ExpiryValid)
	assert.Equal(t, 0, stub.calls)
}

func TestInspect_ChecksumReportedBeforeExpiry(t *testing.T) {
	stub := &stubLookupClient{}
	svc := newService(stub)

	inspection, err := svc.Inspect(context.Background(), application.CardQuery{
		BIN:         "457173",
		CardNumber:  "4571736000000001",
		ExpiryMonth: "13",
		ExpiryYear:  "28",
	})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeChecksumInvalid, svcErr.Code)
	assert.False(t, inspection.Validation.LuhnValid)
	assert.False(t, inspection.Validation.ExpiryValid)
}

func TestInspect_LookupFailurePassesThrough(t *testing.T) {
	stub := &stubLookupClient{err: &binlist.LookupError{
		Kind:       binlist.KindNotFound,
		StatusCode: 404,
		Message:    "no issuer record found for BIN 457173",
	}}
	svc := newService(stub)

	inspection, err := svc.Inspect(context.Background(), application.CardQuery{
		BIN:         "457173",
		CardNumber:  "4571736000000000",
		ExpiryMonth: "12",
		ExpiryYear:  "28",
	})

	require.Error(t, err)
	lookupErr, ok := binlist.IsLookupError(err)
	require.True(t, ok)
	assert.Equal(t, binlist.KindNotFound, lookupErr.Kind)

	assert.True(t, inspection.Validation.LuhnValid)
	assert.True(t, inspection.Validation.ExpiryValid)
	assert.Nil(t, inspection.Record)
}
