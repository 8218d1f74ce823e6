package cli

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

	"github.com/SeamusWaldron/cubescan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scanner over HTTP",
	Long: `Run the HTTP API on server.addr. Frames are posted to /captures and moves
to /moves; the working state is available at /state.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default: server.addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := loggerFrom(cmd)

	ws, err := openWorkspace(logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	api := server.New(ws.session, newScanner(logger), cfg.Scanner.MinScore, logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "session", ws.session.SessionID())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
