package httpx

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitRoundTripper paces outbound requests with a token bucket shared
// by every request that goes through it.
type RateLimitRoundTripper struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func NewRateLimitRoundTripper(
	next http.RoundTripper,
	limit rate.Limit,
	burst int,
) RateLimitRoundTripper {
	return RateLimitRoundTripper{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (rt RateLimitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("limiter.Wait: %w", err)
	}

	return rt.next.RoundTrip(req) //nolint:wrapcheck
}
