package app

import (
	"fmt"
	"io"
	"os"

	"github.com/samvad-hq/beer-inventory-client/internal/config"
	"github.com/samvad-hq/beer-inventory-client/internal/logger"
	"github.com/samvad-hq/beer-inventory-client/pkg/beerclient"
	"github.com/samvad-hq/beer-inventory-client/pkg/httpclient"
)

// App wires the configured transport into a beer client and renders results.
type App struct {
	cfg    *config.Config
	client *beerclient.Client
	log    logger.Logger
	out    io.Writer
}

// New builds an App from config. A nil out writes to stdout.
func New(cfg *config.Config, log logger.Logger, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if out == nil {
		out = os.Stdout
	}

	transport := httpclient.NewRestyClient(httpclient.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{"User-Agent": cfg.AppName},
	})
	client, err := beerclient.New(transport, log)
	if err != nil {
		return nil, fmt.Errorf("init beer client: %w", err)
	}

	log.DebugObj("beer client initialized", "client_config", map[string]any{
		"base_url":        cfg.BaseURL,
		"timeout_seconds": int(cfg.Timeout.Seconds()),
		"output_format":   cfg.OutputFormat,
	})

	return &App{cfg: cfg, client: client, log: log, out: out}, nil
}

// Client exposes the underlying beer client.
func (a *App) Client() *beerclient.Client { return a.client }

// Render writes v to the app output in the configured format.
func (a *App) Render(v any) error {
	return Render(a.out, a.cfg.OutputFormat, v)
}

// Printf writes a plain status line to the app output.
func (a *App) Printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
