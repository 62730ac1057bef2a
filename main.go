package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"urlintake/config"
	"urlintake/logging"
	"urlintake/metrics"
	"urlintake/router"
)

var version = "dev"

func main() {
	cli, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cli.Version {
		fmt.Println(version)
		return
	}

	log := logging.GetLogger()

	cfg, err := config.LoadConfig(cli)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logging.InitLogger(cfg.Level(), cfg.LogFormat); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewRecorder()
	if cfg.Metrics.ReportInterval > 0 {
		go rec.Report(ctx, cfg.Metrics.ReportInterval, log)
	}

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           router.New(cfg, rec),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", cfg.ListenAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Fatalf("Server failed to start: %v", err)
	case <-ctx.Done():
	}

	log.Infoln("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	log.Infoln("Server stopped.")
}
