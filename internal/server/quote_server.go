package server

import (
	"context"
	"fmt"
	"net/http"

	"quotehub/internal/domain/entity"
	"quotehub/pkg/httpx/reply"
	"quotehub/pkg/httpx/req"
	"quotehub/pkg/rest"
)

type quoteService interface {
	GenerateRealQuotes(context.Context, entity.QuoteRequest) entity.Aggregation
}

type QuoteServer struct {
	quoteService quoteService
}

func NewQuoteServer(quoteService quoteService) QuoteServer {
	return QuoteServer{
		quoteService: quoteService,
	}
}

// postV1Quotes answers 200 with an empty quotes list when nothing could be
// ranked; sources says whether a vendor failed.
func (s QuoteServer) postV1Quotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	quoteRequest, err := newDomainQuoteRequest(request)
	if err != nil {
		return fmt.Errorf("newDomainQuoteRequest: %w", err)
	}

	aggregation := s.quoteService.GenerateRealQuotes(ctx, quoteRequest)

	reply.JSON(ctx, w, http.StatusOK, newRESTQuotesResponse(aggregation))

	return nil
}
