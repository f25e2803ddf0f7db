package config

import "time"

// Empty credentials are valid: the vendor route then serves mock quotes.

type TurboRater struct {
	BaseURL   string        `env:"TURBORATER_BASE_URL" envDefault:"https://api.turborater.com"`
	APIKey    string        `env:"TURBORATER_API_KEY" json:"-"`
	AgencyID  string        `env:"TURBORATER_AGENCY_ID"`
	Timeout   time.Duration `env:"TURBORATER_TIMEOUT" envDefault:"15s"`
	RateLimit float64       `env:"TURBORATER_RATE_LIMIT" envDefault:"5"`
	RateBurst int           `env:"TURBORATER_RATE_BURST" envDefault:"5"`
}

func (c TurboRater) Configured() bool {
	return c.APIKey != "" && c.AgencyID != ""
}

type Momentum struct {
	BaseURL      string        `env:"MOMENTUM_BASE_URL" envDefault:"https://api.momentumamp.com"`
	ClientID     string        `env:"MOMENTUM_CLIENT_ID"`
	ClientSecret string        `env:"MOMENTUM_CLIENT_SECRET" json:"-"`
	Timeout      time.Duration `env:"MOMENTUM_TIMEOUT" envDefault:"15s"`
	RateLimit    float64       `env:"MOMENTUM_RATE_LIMIT" envDefault:"5"`
	RateBurst    int           `env:"MOMENTUM_RATE_BURST" envDefault:"5"`
}

func (c Momentum) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type GAIL struct {
	BaseURL   string        `env:"GAIL_BASE_URL" envDefault:"https://api.gail.ai"`
	APIKey    string        `env:"GAIL_API_KEY" json:"-"`
	Timeout   time.Duration `env:"GAIL_TIMEOUT" envDefault:"20s"`
	RateLimit float64       `env:"GAIL_RATE_LIMIT" envDefault:"2"`
	RateBurst int           `env:"GAIL_RATE_BURST" envDefault:"2"`
}

func (c GAIL) Configured() bool {
	return c.APIKey != ""
}
