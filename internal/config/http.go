package config

import "time"

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// QuoteAPI points the fetcher at the vendor proxy routes, normally this
// same service.
type QuoteAPI struct {
	BaseURL string        `env:"QUOTE_API_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"QUOTE_API_TIMEOUT" envDefault:"30s"`
}
