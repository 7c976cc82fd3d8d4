package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpggio/bizdesk/internal/config"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "bizdesk",
		Short: "Small-business dashboard backend",
		Long: `bizdesk serves a business dashboard: clients, financial transactions,
scheduled tasks and a product/service catalog, over HTTP and MCP.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfgFile, "")
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $BIZDESK_CONFIG_PATH)")

	cmd.AddCommand(serveCmd(&cfgFile))
	cmd.AddCommand(seedCmd(&cfgFile))
	cmd.AddCommand(hashPasswordCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// newLogger writes to stderr in stdio mode so stdout stays clean for
// JSON-RPC. BIZDESK_LOG_PATH redirects logs to a size-capped file.
func newLogger(cfg config.Config) (*slog.Logger, func()) {
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.ModeStdio {
		logWriter = os.Stderr
	}
	closeFn := func() {}
	if logPath := os.Getenv("BIZDESK_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			logWriter = fileWriter
			closeFn = func() { file.Close() }
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, closeFn
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
