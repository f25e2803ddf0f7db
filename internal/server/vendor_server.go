package server

import (
	"context"
	"fmt"
	"net/http"

	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/pkg/httpx/reply"
	"quotehub/pkg/httpx/req"
	"quotehub/pkg/rest"
)

type proxyService interface {
	Quote(context.Context, value.Source, entity.QuoteRequest) (entity.VendorResponse, error)
}

type VendorServer struct {
	proxyService proxyService
}

func NewVendorServer(proxyService proxyService) VendorServer {
	return VendorServer{
		proxyService: proxyService,
	}
}

func (s VendorServer) postVendorQuote(source value.Source) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		ctx := r.Context()

		var request rest.QuoteRequest

		if err := req.Read(r, &request); err != nil {
			return fmt.Errorf("req.Read: %w", err)
		}

		quoteRequest, err := newDomainQuoteRequest(request)
		if err != nil {
			return fmt.Errorf("newDomainQuoteRequest: %w", err)
		}

		response, err := s.proxyService.Quote(ctx, source, quoteRequest)
		if err != nil {
			return fmt.Errorf("proxyService.Quote: %w", err)
		}

		reply.JSON(ctx, w, http.StatusOK, newRESTVendorQuotesResponse(response))

		return nil
	}
}
