// Package web parses web command flags and launches the browser workflow service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/solcalc/internal/platform/cmd"
	"github.com/louisbranch/solcalc/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string        `env:"WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	BackendBaseURL string        `env:"WEB_BACKEND_BASE_URL" envDefault:"http://localhost:8080"`
	BackendTimeout time.Duration `env:"WEB_BACKEND_TIMEOUT" envDefault:"10s"`
	ProxyAPI       bool          `env:"WEB_PROXY_API" envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendBaseURL, "backend-base-url", cfg.BackendBaseURL, "Project backend HTTP base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "Timeout for each project backend call")
	fs.BoolVar(&cfg.ProxyAPI, "proxy-api", cfg.ProxyAPI, "Forward /api/ requests to the project backend")
}

// Run starts the web workflow server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:       cfg.HTTPAddr,
			BackendBaseURL: cfg.BackendBaseURL,
			BackendTimeout: cfg.BackendTimeout,
			ProxyAPI:       cfg.ProxyAPI,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
