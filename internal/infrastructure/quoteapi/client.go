// Package quoteapi calls the /api/{vendor}/quote routes that front the rating
// vendors.
package quoteapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"quotehub/internal/domain"
	"quotehub/internal/domain/entity"
	"quotehub/internal/domain/value"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const maxErrorBodyLen = 512

//nolint:gochecknoglobals
var sourcePaths = map[value.Source]string{
	value.SourceTurboRater: "/api/turborrater/quote",
	value.SourceMomentum:   "/api/momentum/quote",
	value.SourceGAIL:       "/api/gail/quote",
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Quotes posts request to the route of source and returns the decoded quotes.
func (c Client) Quotes(
	ctx context.Context,
	source value.Source,
	request entity.QuoteRequest,
) ([]entity.Quote, error) {
	path, ok := sourcePaths[source]
	if !ok {
		return nil, domain.NewError(errcodes.VendorNotConfigured, fmt.Sprintf("unknown source %q", source))
	}

	body, err := json.Marshal(newRESTQuoteRequest(request))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("httpClient.Do: %w", err),
			errcodes.VendorUnavailable,
			source.String()+" unavailable",
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen)) //nolint:errcheck // best effort

		return nil, domain.NewError(
			errcodes.VendorUnavailable,
			fmt.Sprintf("%s: status %d: %s", source, resp.StatusCode, bytes.TrimSpace(msg)),
		)
	}

	var response rest.VendorQuotesResponse

	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("json.Decode: %w", err),
			errcodes.VendorBadResponse,
			source.String()+" sent an unreadable body",
		)
	}

	quotes := make([]entity.Quote, 0, len(response.Quotes))
	for _, q := range response.Quotes {
		quotes = append(quotes, newDomainQuote(q))
	}

	return quotes, nil
}
