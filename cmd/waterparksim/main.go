// Command waterparksim runs one water park simulation end to end and
// prints its RunResult as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dror777-a11y/waterpark-sim/internal/metrics"
	"github.com/dror777-a11y/waterpark-sim/internal/park"
	"github.com/dror777-a11y/waterpark-sim/pkg/config"
	"github.com/dror777-a11y/waterpark-sim/pkg/logger"
)

func main() {
	var configPath string
	var metricsAddr string
	var logLevel string

	flag.StringVar(&configPath, "config", "", "path to a run config YAML file (defaults to spec.md's baseline)")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address for the run's duration")
	flag.StringVar(&logLevel, "log-level", "", "override the config's log level")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Error("failed to load config", "path", configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger.SetDefault(logger.New(cfg.LogLevel, os.Stdout))

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	var httpSrv *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		httpSrv = &http.Server{
			Addr:              metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", "addr", metricsAddr)
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	p := park.New(cfg, collector)
	result := p.Run()

	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Error("failed to encode run result", "error", err)
		os.Exit(1)
	}
}
