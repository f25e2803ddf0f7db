package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"quotehub/internal/config"
	"quotehub/internal/domain/service/proxy"
	"quotehub/internal/domain/service/quote"
	"quotehub/internal/infrastructure/metrics"
	"quotehub/internal/infrastructure/quoteapi"
	"quotehub/internal/infrastructure/vendors/gail"
	"quotehub/internal/infrastructure/vendors/momentum"
	"quotehub/internal/infrastructure/vendors/turborater"
	"quotehub/internal/server"
	"quotehub/pkg/application/modules"
	"quotehub/pkg/contextx"
	"quotehub/pkg/httpx"
	"quotehub/pkg/logx"
	"quotehub/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run starts the API, probe and metrics servers and blocks until ctx is done
// or one of them fails.
func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	quoteMetrics := metrics.NewQuoteMetrics(registry)

	turboRater := turborater.NewClient(cfg.TurboRater, cfg.HTTP.LogFieldMaxLen)
	momentumClient := momentum.NewClient(cfg.Momentum, cfg.HTTP.LogFieldMaxLen)
	gailClient := gail.NewClient(cfg.GAIL, cfg.HTTP.LogFieldMaxLen)

	logger(ctx).Info("vendors",
		slog.Bool("turborater-configured", turboRater.Configured()),
		slog.Bool("momentum-configured", momentumClient.Configured()),
		slog.Bool("gail-configured", gailClient.Configured()),
	)

	proxyService := proxy.NewService(turboRater, momentumClient, gailClient).
		WithMetrics(quoteMetrics)

	quoteAPI := quoteapi.NewClient(cfg.QuoteAPI.BaseURL, &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		),
		Timeout: cfg.QuoteAPI.Timeout,
	})

	quoteService := quote.NewService(quoteAPI).
		WithMetrics(quoteMetrics)

	srv := server.NewServer(
		server.NewQuoteServer(quoteService),
		server.NewVendorServer(proxyService),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           server.NewRouter(srv, cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: map[string]probe.Check{
			"quote-api": dialCheck(cfg.QuoteAPI.BaseURL),
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// dialCheck succeeds once the host of rawURL accepts TCP connections.
func dialCheck(rawURL string) probe.Check {
	return func(ctx context.Context) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("url.Parse: %w", err)
		}

		host := u.Host
		if u.Port() == "" {
			host = net.JoinHostPort(u.Hostname(), lo.Ternary(u.Scheme == "https", "443", "80"))
		}

		var dialer net.Dialer

		conn, err := dialer.DialContext(ctx, "tcp", host)
		if err != nil {
			return fmt.Errorf("dialer.DialContext: %w", err)
		}

		return conn.Close() //nolint:wrapcheck
	}
}
