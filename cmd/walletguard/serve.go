package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/AlexZinkM/walletguard/docs"
	"github.com/AlexZinkM/walletguard/internal/api"
	"github.com/AlexZinkM/walletguard/internal/config"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local API for the browser shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			log := logger.Named("serve")

			// Prompt for password at startup (hidden input)
			if err := config.PromptForPassword(); err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := metrics.Register(nil); err != nil {
				return err
			}

			token := cfg.ShellToken
			if token == "" {
				if token, err = newShellToken(); err != nil {
					return err
				}
				outf(cmd, "shell token: %s", token)
			}

			router := api.SetupRouter(api.Deps{
				Wallet:      a.wallet,
				Pins:        a.pins,
				Relay:       a.relay,
				Bridge:      a.bridge,
				CORSOrigins: cfg.CORSOrigins,
				ShellToken:  token,
			})
			srv := &http.Server{
				Addr:              ":" + config.GetPort(),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			log.Info("walletguard launched",
				zap.String("version", version),
				zap.String("commit", commit),
				zap.String("addr", srv.Addr),
				zap.String("pin_verifier", cfg.PinVerifier),
				zap.String("biometric_provider", cfg.BiometricProvider),
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			err = g.Wait()
			log.Info("walletguard stopped", logger.Err(err))
			return err
		},
	}
}

// newShellToken returns a random bearer token for this process.
func newShellToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate shell token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
