package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	slog.Info("[Main] Starting newslens", slog.String("env", cfg.Env), slog.String("addr", addr))
	if err := a.Server.ListenAndServe(ctx, addr); err != nil {
		slog.Error("[Main] Server stopped with error", slog.String("error", err.Error()))
		return err
	}
	slog.Info("[Main] Server stopped")
	return nil
}
