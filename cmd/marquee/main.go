// Command marquee runs an interactive demo of the marquee runtime.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/marquee/pkg/config"
	"github.com/odvcencio/marquee/pkg/logging"
	"github.com/odvcencio/marquee/pkg/ui/backend"
	"github.com/odvcencio/marquee/pkg/ui/backend/tcell"
	"github.com/odvcencio/marquee/pkg/ui/runtime"
)

// Version information - set via ldflags during build
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

// newBackendFn allows tests to substitute a simulation backend.
var newBackendFn = func() (backend.Backend, error) { return tcell.New() }

type options struct {
	configPath  string
	showVersion bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("marquee", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a config file (default: ~/.marquee and ./.marquee)")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, withExitCode(err, exitConfig)
	}
	return opts, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(exitCodeForError(err))
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "marquee %s (%s)\n", version, commit)
		return nil
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	defer closeLog()
	for _, w := range cfg.ValidationWarnings() {
		logger.Warn("config warning", "warning", w)
	}

	be, err := newBackendFn()
	if err != nil {
		return err
	}

	var registry *prometheus.Registry
	var reg prometheus.Registerer
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		reg = registry
	}

	app, err := runtime.NewApp(runtime.AppConfig{
		Backend:      be,
		FPS:          cfg.UI.FPS,
		AutohideMenu: cfg.UI.AutohideMenu,
		Logger:       logger.WithComponent("runtime"),
		Registerer:   reg,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	if cfg.UI.ThemeFile != "" {
		// A bad theme keeps the default; the App logs the failure.
		_ = app.LoadThemeFile(cfg.UI.ThemeFile)
		if cfg.UI.WatchTheme {
			stop, err := app.WatchThemeFile(cfg.UI.ThemeFile)
			if err != nil {
				logger.Warn("theme watch disabled", "path", cfg.UI.ThemeFile, "error", err)
			} else {
				defer stop()
			}
		}
	}

	buildDemo(app, cfg.UI.AutohideMenu)

	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		return runClock(gctx, app.Sink(), time.Second, time.Now)
	})
	if registry != nil {
		serveMetrics(gctx, g, cfg.Metrics.Listen, registry, logger)
	}

	logger.Info("marquee starting", "version", version, "fps", cfg.UI.FPS)
	// Run only reports cancellation of gctx, which is a normal shutdown.
	_ = app.Run(gctx)
	stopRun()
	err = g.Wait()
	logger.Info("marquee stopped")
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// openLogger opens the configured log file. Without one, logs are discarded
// because the terminal owns stdout.
func openLogger(cfg config.LogConfig) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return logging.Nop(), func() {}, nil
	}
	logger, closer, err := logging.Open(cfg.File, "marquee", level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

// serveMetrics exposes registry on addr until ctx ends. A listener failure
// fails the group, which stops the loop.
func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, registry *prometheus.Registry, logger *logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
