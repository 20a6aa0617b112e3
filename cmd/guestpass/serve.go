package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ob-cheng/Guest-Pass/internal/adapter/driven/mdns"
	sqliteadapter "github.com/ob-cheng/Guest-Pass/internal/adapter/driven/sqlite"
	httphandler "github.com/ob-cheng/Guest-Pass/internal/adapter/driving/http"
	webhandler "github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web"
	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/config"
	"github.com/ob-cheng/Guest-Pass/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the HTTP server that hosts the guest pass form, the JSON API and the
card presets.

Configuration is read from GUESTPASS_* environment variables, optionally on
top of the YAML file named by GUESTPASS_CONFIG_FILE.`,
	Example: `  # Listen on all interfaces and advertise over mDNS
  GUESTPASS_LISTEN_ADDR=0.0.0.0:8080 GUESTPASS_MDNS_ENABLED=true guestpass serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"qr_size", cfg.QRSize,
		"mdns_enabled", cfg.MDNSEnabled,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the preset database, if configured, and migrate it.
	var presetSvc *application.PresetService
	if cfg.DBPath != "" {
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		slog.Info("database opened", "path", cfg.DBPath)

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}
		slog.Info("migrations complete")

		presetSvc = application.NewPresetService(sqliteadapter.NewPresetRepo(db))
	} else {
		slog.Info("no database configured, card presets disabled")
	}

	// 4. Wire services.
	passSvc := application.NewPassService(newRenderer(cfg), slog.Default())

	// 5. Register API and web routes on one mux.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(passSvc, presetSvc, slog.Default()))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(passSvc, presetSvc, slog.Default()))

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 6. Advertise on the LAN.
	if cfg.MDNSEnabled {
		if adv, err := advertise(cfg); err != nil {
			slog.Warn("mdns advertisement disabled", "error", err)
		} else {
			defer adv.Shutdown()
			slog.Info("mdns advertisement started", "instance", cfg.MDNSInstance, "service", mdns.ServiceType)
		}
	}

	slog.Info("guestpass started", "listen_addr", cfg.ListenAddr, "version", version.Version)

	// 7. Wait for shutdown signal or server failure.
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			return err
		}
	}
	slog.Info("shutting down")

	// 8. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func advertise(cfg *config.Config) (*mdns.Advertiser, error) {
	port, err := mdns.PortFromAddr(cfg.ListenAddr)
	if err != nil {
		return nil, err
	}
	return mdns.Advertise(cfg.MDNSInstance, port)
}
