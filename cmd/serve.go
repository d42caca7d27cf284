package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zentinel/docver/internal/chrome"
	"github.com/zentinel/docver/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built documentation site",
	Long: `Serves the built site directory over HTTP, exposing the version
manifest and decorating every HTML page with the version selector and,
on outdated versions, the staleness banner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log, err := newLogger()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		if _, err := os.Stat(cfg.SiteDir); os.IsNotExist(err) {
			return fmt.Errorf("site directory %s not found\nRun `docver build` first", cfg.SiteDir)
		}

		ctrl := chrome.New(chrome.Config{
			CurrentVersion: cfg.CurrentVersion,
			BasePath:       cfg.BasePath,
			NavID:          cfg.NavID,
			ContentID:      cfg.ContentID,
			Logger:         log,
		})

		srv := server.New(server.Config{
			Port:     cfg.Port,
			BasePath: cfg.BasePath,
			SiteDir:  cfg.SiteDir,
			AllowAll: cfg.AllowAllOrigins,
		}, manifestSource(cfg), ctrl, log)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Info("shutting down", zap.String("signal", sig.String()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
