// Package vendors holds what the rating vendor clients share: the outbound
// transport chain and the helpers that build their mock quotes.
package vendors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	"quotehub/internal/domain"
	"quotehub/pkg/errcodes"
	"quotehub/pkg/httpx"
	"quotehub/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const maxErrorBodyLen = 512

type TransportOptions struct {
	Timeout        time.Duration
	RateLimit      float64
	RateBurst      int
	LogFieldMaxLen int
}

// NewTransport chains rate limiting and masked logging in front of the
// default transport. A non-positive RateLimit disables pacing.
func NewTransport(opts TransportOptions) http.RoundTripper {
	var rt http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
	)

	if opts.RateLimit > 0 {
		burst := max(opts.RateBurst, 1)
		rt = httpx.NewRateLimitRoundTripper(rt, rate.Limit(opts.RateLimit), burst)
	}

	return rt
}

func NewHTTPClient(transport http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// PostJSON sends body as JSON and decodes a 2xx response into dest. Any other
// status is returned as a VendorUnavailable error carrying the start of the
// response body.
func PostJSON(
	ctx context.Context,
	client *http.Client,
	url string,
	headers http.Header,
	body any,
	dest any,
) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return Do(client, req, dest)
}

func Do(client *http.Client, req *http.Request, dest any) error {
	resp, err := client.Do(req)
	if err != nil {
		// Errors raised inside the transport chain already carry a code.
		if domain.IsAppError(err) {
			return fmt.Errorf("client.Do: %w", err)
		}

		return domain.WrapError(fmt.Errorf("client.Do: %w", err), errcodes.VendorUnavailable, "vendor unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.NewError(errcodes.VendorAuthFailed, fmt.Sprintf("vendor rejected credentials: status %d", resp.StatusCode))
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen)) //nolint:errcheck // best effort

		return domain.NewError(
			errcodes.VendorUnavailable,
			fmt.Sprintf("vendor status %d: %s", resp.StatusCode, bytes.TrimSpace(msg)),
		)
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.WrapError(fmt.Errorf("json.Decode: %w", err), errcodes.VendorBadResponse, "unreadable vendor body")
	}

	return nil
}
