package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pharmakit/icontint/internal/config"
	"github.com/pharmakit/icontint/internal/extract"
	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/logger"
	"github.com/pharmakit/icontint/internal/manifest"
	"github.com/pharmakit/icontint/internal/server"
	"github.com/pharmakit/icontint/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(root *rootFlags) *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, configPath, listen)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address override")

	return cmd
}

func runServe(cmd *cobra.Command, root *rootFlags, configPath, listen string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	level := cfg.LogLevel
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}
	log = log.WithComponent("serve")

	iconStore := icons.New()

	manifestPath := root.manifestPath
	if manifestPath == "" {
		manifestPath = cfg.ManifestPath
	}
	var m *manifest.Manifest
	if manifestPath == "" {
		m = manifest.Default()
	} else if m, err = manifest.Load(manifestPath); err != nil {
		return err
	}
	if err := manifest.ValidateAgainst(m, iconStore); err != nil {
		return err
	}

	srv := &server.Server{
		Icons:     iconStore,
		Manifest:  m,
		Extractor: extract.NewHeuristic(),
		Log:       log,
		Cfg:       *cfg,
	}

	if cfg.DatabasePath != "" {
		meds, err := store.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer meds.Close()
		srv.Meds = meds
	} else {
		log.Warn("no database configured, medication routes disabled")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(map[string]any{"listen": cfg.Listen}).Info("serving HTTP API")
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
