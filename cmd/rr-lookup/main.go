package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haukened/rr-lookup/internal/dns/common/clock"
	"github.com/haukened/rr-lookup/internal/dns/common/log"
	"github.com/haukened/rr-lookup/internal/dns/config"
	"github.com/haukened/rr-lookup/internal/dns/gateways/upstream"
	"github.com/haukened/rr-lookup/internal/dns/gateways/wire"
	"github.com/haukened/rr-lookup/internal/dns/repos/dnscache"
	"github.com/haukened/rr-lookup/internal/dns/services/lookup"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "rr-lookup"
)

// Application holds the components of one lookup run.
type Application struct {
	config *config.AppConfig
	lookup *lookup.Service
	logger log.Logger
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Interrupted")
		cancel()
	}()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	log.Sync()
	os.Exit(code)
}

// run parses args, performs the lookups and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("server", "", "upstream resolver as ip:port (default from config, 8.8.8.8:53)")
	timeout := fs.Duration("timeout", 0, "per-query timeout (default from config, 5s)")
	configPath := fs.String("config", "", "optional .yaml, .yml, .json or .toml config file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] name...\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 1
	}

	overrides := map[string]any{}
	if *server != "" {
		overrides["servers"] = []string{*server}
	}
	if *timeout > 0 {
		overrides["timeout"] = *timeout
	}

	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "Logging configuration error: %v\n", err)
		return 1
	}

	log.Debug(map[string]any{
		"version":     version,
		"env":         cfg.Env,
		"log_level":   cfg.LogLevel,
		"servers":     cfg.Servers,
		"timeout":     cfg.Timeout.String(),
		"buffer_size": cfg.BufferSize,
		"cache_size":  cfg.CacheSize,
	}, "Starting rr-lookup")

	app, err := buildApplication(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to build application: %v\n", err)
		return 1
	}

	if err := app.Run(ctx, fs.Args(), stdout); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	codec := wire.NewUDPCodec(logger)

	upstreamClient, err := upstream.NewClient(upstream.Options{
		Servers:    cfg.Servers,
		Timeout:    cfg.Timeout,
		Parallel:   cfg.Parallel,
		BufferSize: cfg.BufferSize,
		Codec:      codec,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	var cache lookup.Cache
	if cfg.CacheSize > 0 {
		c, err := dnscache.New(cfg.CacheSize, clock.RealClock{})
		if err != nil {
			return nil, fmt.Errorf("failed to create answer cache: %w", err)
		}
		cache = c
	}

	svc, err := lookup.NewService(lookup.Options{
		Cache:    cache,
		Logger:   logger,
		Upstream: upstreamClient,
		IDNA:     cfg.IDNA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup service: %w", err)
	}

	return &Application{config: cfg, lookup: svc, logger: logger}, nil
}

// Run looks up each name in turn and writes its tables to out. Every name is
// attempted; the first failure is returned after the rest have been tried.
func (app *Application) Run(ctx context.Context, names []string, out io.Writer) error {
	var firstErr error
	for i, name := range names {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if i > 0 {
			fmt.Fprintln(out)
		}

		start := time.Now()
		result, err := app.lookup.Lookup(ctx, name)
		if err != nil {
			app.logger.Error(map[string]any{"name": name, "error": err.Error()}, "Lookup failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		app.logger.Debug(map[string]any{
			"name":    name,
			"cached":  result.Cached,
			"elapsed": time.Since(start).String(),
		}, "Rendering result")

		if err := Render(out, result.Response); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
	}
	return firstErr
}
