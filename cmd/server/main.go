/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the holiday API server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (YAML, .env, environment)
  2. Parse command-line flags (override the loaded values)
  3. Build the logger and the holiday engine
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config   YAML configuration file (default: config.yaml, optional)
  -envfile  .env file (default: .env, optional)
  -host     Listen host
  -port     HTTP server port (default: 8080)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  ./server -port=3000
  PORT=3000 LOG_FORMAT=text ./server

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration sources
*/
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/warp/holiday-engine/api"
	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/feriados"
)

// peekOption returns the value following one of flags in args, so the config
// file can be loaded before the flag set (whose defaults depend on it) is built.
func peekOption(args []string, flags []string, defaultOpt string) string {
	for i := 0; i < len(args)-1; i++ {
		if slices.Contains(flags, args[i]) {
			return args[i+1]
		}
	}
	return defaultOpt
}

func main() {
	configPath := peekOption(os.Args[1:], []string{"-config", "--config"}, "config.yaml")
	envPath := peekOption(os.Args[1:], []string{"-envfile", "--envfile"}, ".env")

	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		config.NewLogger(config.Default().Logging).Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags
	_ = flag.String("config", configPath, "YAML configuration file")
	_ = flag.String("envfile", envPath, "Load ENVs from this file")
	flag.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "Listen host")
	flag.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "HTTP server port")
	flag.Parse()

	logger := config.NewLogger(cfg.Logging)
	config.SetDefault(logger)

	handler := api.NewHandler(feriados.Default(), logger)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
