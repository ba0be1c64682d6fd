// Package serve runs the WhatsApp webhook server
package serve

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ranjeetkulkarni/ExpenseNinja/cmd/root"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/container"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/relay"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WhatsApp webhook server",
	Long: `Start the HTTP server that receives Twilio WhatsApp webhooks, records and
classifies the expenses they carry and replies over the same channel.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := container.NewContainer(ctx, root.Cfg)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to wire application dependencies")
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Error releasing resources")
		}
	}()

	log := c.GetLogger()

	var sender relay.Sender
	if s := c.GetSender(); s != nil {
		sender = s
	} else {
		log.Warn("Twilio credentials not configured, replies will be dropped")
	}

	handler := relay.NewWebhookHandler(c.GetOrchestrator(), sender, log)
	server := relay.NewServer(root.Cfg.Server.Addr, handler)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Webhook server listening", logging.Field{Key: "addr", Value: root.Cfg.Server.Addr})
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Webhook server failed")
		}
	case sig := <-stop:
		log.Info("Shutting down", logging.Field{Key: "signal", Value: sig.String()})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Graceful shutdown failed")
		}
	}
}
