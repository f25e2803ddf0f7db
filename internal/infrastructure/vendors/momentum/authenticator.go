package momentum

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"quotehub/internal/domain"
	"quotehub/internal/infrastructure/vendors"
	"quotehub/pkg/errcodes"
)

const (
	tokenPath     = "/oauth/token"
	tokenCacheKey = "access_token"
	// Tokens are dropped this long before Momentum expires them.
	tokenExpiryLeeway = 30 * time.Second
	minTokenTTL       = time.Second
)

// Authenticator obtains OAuth2 client-credentials tokens and keeps the
// current one until shortly before it expires.
type Authenticator struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokens       *cache.Cache
	mu           sync.Mutex
}

func NewAuthenticator(
	baseURL string,
	clientID string,
	clientSecret string,
	httpClient *http.Client,
) *Authenticator {
	return &Authenticator{
		tokenURL:     baseURL + tokenPath,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		tokens:       cache.New(cache.NoExpiration, time.Minute),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Authenticate always fetches a new token and replaces the cached one.
func (a *Authenticator) Authenticate(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var token tokenResponse

	if err = vendors.Do(a.httpClient, req, &token); err != nil {
		return domain.WrapError(fmt.Errorf("vendors.Do: %w", err), errcodes.VendorAuthFailed, "momentum token request failed")
	}

	if token.AccessToken == "" {
		return domain.NewError(errcodes.VendorAuthFailed, "momentum returned an empty access token")
	}

	ttl := max(time.Duration(token.ExpiresIn)*time.Second-tokenExpiryLeeway, minTokenTTL)
	a.tokens.Set(tokenCacheKey, token.AccessToken, ttl)

	logger(ctx).Debug("momentum token refreshed", slog.Duration("ttl", ttl))

	return nil
}

// BearerToken returns the cached token or "" once it has expired.
func (a *Authenticator) BearerToken() string {
	token, ok := a.tokens.Get(tokenCacheKey)
	if !ok {
		return ""
	}

	s, _ := token.(string) //nolint:errcheck

	return s
}
