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

	"github.com/AlexZinkM/impact-vault/assistant"
	"github.com/AlexZinkM/impact-vault/internal/api"
	"github.com/AlexZinkM/impact-vault/internal/client"
	"github.com/AlexZinkM/impact-vault/internal/config"
	"github.com/AlexZinkM/impact-vault/internal/logger"
	"github.com/AlexZinkM/impact-vault/vault"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the page, the JSON API, the chat websocket and Swagger UI.
When the wallet key file exists the password is asked once at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		cfg := config.Get()

		log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
		if err != nil {
			return err
		}
		defer log.Sync()

		if _, err := os.Stat(cfg.WalletFilePath); err == nil {
			if err := config.PromptForPassword(); err != nil {
				return fmt.Errorf("failed to read wallet password: %w", err)
			}
		} else {
			// The page's Generate button writes the key file under this password
			log.Info("no wallet file yet, choose a password for the new wallet", zap.String("path", cfg.WalletFilePath))
			password, err := readNewPassword()
			if err != nil {
				return fmt.Errorf("failed to read wallet password: %w", err)
			}
			config.SetWalletPassword(password)
			clear(password)
		}

		session := vault.NewSessionFromConfig(log)
		defer session.Close()

		var completer assistant.Completer
		if cfg.ChatAPIKey != "" {
			completer = client.NewCompletionClient(cfg.ChatAPIKey, cfg.ChatBaseURL, cfg.ChatModel)
		}
		chat := assistant.New(completer, log)

		router, err := api.SetupRouter(session, chat, log)
		if err != nil {
			return fmt.Errorf("failed to setup router: %w", err)
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("server starting",
				zap.String("addr", srv.Addr),
				zap.Bool("mock", session.Mock()),
				zap.Bool("ai_available", completer != nil),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
