// Package proxy fronts the rating vendors and falls back to canned quotes
// whenever a vendor cannot answer.
package proxy

import (
	"context"
	"fmt"
	"log/slog"

	"quotehub/internal/domain"
	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/pkg/contextx"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	FallbackNotConfigured = "not_configured"
	FallbackVendorError   = "vendor_error"
)

type Vendor interface {
	Source() value.Source
	Configured() bool
	Quote(ctx context.Context, request entity.QuoteRequest) (entity.VendorResponse, error)
	Mock(request entity.QuoteRequest) entity.VendorResponse
}

type Metrics interface {
	ObserveFallback(source value.Source, reason string)
}

type Service struct {
	vendors map[value.Source]Vendor
	metrics Metrics
}

func NewService(vendors ...Vendor) *Service {
	s := &Service{
		vendors: make(map[value.Source]Vendor, len(vendors)),
		metrics: nopMetrics{},
	}

	for _, v := range vendors {
		s.vendors[v.Source()] = v
	}

	return s
}

func (s *Service) WithMetrics(metrics Metrics) *Service {
	s.metrics = metrics
	return s
}

// Quote makes at most one vendor call. Missing credentials or a failed call
// yield the vendor's mock quotes instead of an error.
func (s *Service) Quote(
	ctx context.Context,
	source value.Source,
	request entity.QuoteRequest,
) (entity.VendorResponse, error) {
	vendor, ok := s.vendors[source]
	if !ok {
		return entity.VendorResponse{}, domain.NewError(
			errcodes.VendorNotConfigured,
			fmt.Sprintf("no vendor registered for %q", source),
		)
	}

	log := logger(ctx).With(slog.String(logx.FieldSource, source.String()))

	if !vendor.Configured() {
		log.Info("vendor credentials missing, serving mock quotes")
		s.metrics.ObserveFallback(source, FallbackNotConfigured)

		return vendor.Mock(request), nil
	}

	response, err := vendor.Quote(ctx, request)
	if err != nil {
		log.Warn("vendor call failed, serving mock quotes", logx.Error(err))
		s.metrics.ObserveFallback(source, FallbackVendorError)

		return vendor.Mock(request), nil
	}

	log.Debug("vendor quotes received", slog.Int(logx.FieldQuoteCount, len(response.Quotes)))

	return response, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveFallback(value.Source, string) {}
