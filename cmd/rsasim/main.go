// Command rsasim loads a scenario file, routes and allocates its requests on
// a WDM session and prints the outcome with a per-link congestion table.
//
// Usage:
//
//	rsasim -scenario metro.yaml [-config rsasim.toml] [-serve]
//
// With -serve the process keeps the Prometheus endpoint up until
// interrupted; it requires metrics.addr in the config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wdm/config"
	"github.com/katalvlaran/wdm/metrics"
	"github.com/katalvlaran/wdm/rsa"
	"github.com/katalvlaran/wdm/scenario"
)

func main() {
	os.Exit(runWithSignals(os.Args[1:], os.Stdout, os.Stderr))
}

// runWithSignals runs until done or until SIGINT/SIGTERM cancels the context.
// Its deferred stop runs before main calls os.Exit.
func runWithSignals(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, args, stdout, stderr)
}

// run is main without process globals so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rsasim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath   = fs.String("config", "", "TOML run configuration (defaults apply when empty)")
		scenarioPath = fs.String("scenario", "", "YAML scenario file")
		serve        = fs.Bool("serve", false, "keep serving /metrics after the scenario finishes")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *scenarioPath == "" {
		fmt.Fprintln(stderr, "rsasim: -scenario is required")
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "rsasim: %v\n", err)
			return 1
		}
	}
	if *serve && cfg.Metrics.Addr == "" {
		fmt.Fprintln(stderr, "rsasim: -serve needs metrics.addr in the config")
		return 2
	}

	log, closer, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "rsasim: %v\n", err)
		return 1
	}
	defer closer.Close()

	if err = simulate(ctx, cfg, *scenarioPath, *serve, stdout, log); err != nil {
		log.WithError(err).Error("rsasim failed")
		return 1
	}

	return 0
}

func simulate(ctx context.Context, cfg config.Config, path string, serve bool, stdout io.Writer, log *logrus.Logger) error {
	file, err := scenario.Load(path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"scenario": file.Name, "requests": len(file.Requests)}).Info("scenario loaded")

	reg := metrics.NewRegistry()
	opts := append(cfg.SessionOptions(), rsa.WithLogger(log), rsa.WithMetrics(reg))
	session := rsa.NewSession(opts...)
	if err = file.Apply(session); err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		srv := startMetrics(cfg.Metrics.Addr, reg, log)
		defer shutdown(srv, log)
	}

	outcomes, err := scenario.Run(ctx, session, file, cfg.Batch.Workers)
	if err != nil {
		return err
	}
	renderOutcomes(stdout, outcomes)
	renderSnapshot(stdout, session.Snapshot())

	if serve {
		log.WithField("addr", cfg.Metrics.Addr).Info("serving metrics until interrupted")
		<-ctx.Done()
	}

	return nil
}

func startMetrics(addr string, reg *metrics.Registry, log *logrus.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics listener stopped")
		}
	}()
	log.WithField("addr", addr).Info("metrics listener started")

	return srv
}

func shutdown(srv *http.Server, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("metrics shutdown")
	}
}
