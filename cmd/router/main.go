package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/routewise/router/pkg/apiserver"
	"github.com/routewise/router/pkg/config"
	"github.com/routewise/router/pkg/decision"
	"github.com/routewise/router/pkg/observability"
)

func main() {
	var (
		configPath  = flag.String("config", "config/config.yaml", "Path to the routing rules file")
		port        = flag.Int("port", 8080, "Port to listen on for the routing API")
		metricsPort = flag.Int("metrics-port", 9190, "Port for Prometheus metrics")
		demo        = flag.Bool("demo", false, "Route a few sample prompts and exit")
	)
	flag.Parse()

	// Initialize logging (zap) from environment.
	if _, err := observability.InitLoggerFromEnv(); err != nil {
		// Fallback to stderr since logger initialization failed
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}

	if endpoint := os.Getenv("ROUTER_TRACE_ENDPOINT"); endpoint != "" {
		err := observability.InitTracing(context.Background(), observability.TracingConfig{
			Enabled:          true,
			ExporterType:     "otlp",
			ExporterEndpoint: endpoint,
			ExporterInsecure: true,
			ServiceName:      "routewise-router",
		})
		if err != nil {
			observability.Warnf("Tracing disabled: %v", err)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		observability.Fatalf("Failed to load routing rules: %v", err)
	}

	engine, err := decision.NewEngine(cfg)
	if err != nil {
		observability.Fatalf("Failed to create routing engine: %v", err)
	}

	if *demo {
		runDemo(engine)
		return
	}

	// Start metrics server
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		metricsAddr := fmt.Sprintf(":%d", *metricsPort)
		observability.Infof("Starting metrics server on %s", metricsAddr)
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			observability.Errorf("Metrics server error: %v", err)
		}
	}()

	if err := apiserver.New(engine).Start(*port); err != nil {
		observability.Fatalf("Routing API server error: %v", err)
	}
}

// loadConfig parses the rules file, falling back to the built-in tables when
// the default path does not exist.
func loadConfig(path string) (*config.RouterConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		observability.Warnf("Rules file %s not found, using built-in tables", path)
		return config.Default(), nil
	}
	return config.Parse(path)
}

// runDemo routes a few representative prompts and prints the decisions.
func runDemo(engine *decision.Engine) {
	prompts := []string{
		"Refactor the payment architecture for microservices.",
		"Write a creative story about a robot.",
		"Scan this pdf and find similar documents.",
	}

	for _, prompt := range prompts {
		result := engine.Route(prompt)
		body, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			observability.Errorf("Failed to marshal decision: %v", err)
			continue
		}
		fmt.Printf("Input: %s\n%s\n\n", prompt, body)
	}
}
