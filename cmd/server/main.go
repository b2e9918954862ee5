package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/y4pp1/counter/internal/app"
	"github.com/y4pp1/counter/internal/config"
	"github.com/y4pp1/counter/internal/log"
)

var (
	flagConfig      string
	flagAddr        string
	flagLogLevel    string
	flagAdminSecret string
)

var rootCmd = &cobra.Command{
	Use:   "counter-server",
	Short: "Real-time shared counter board broker",
	Long: "counter-server runs the websocket broker for the shared counter board.\n" +
		"Clients connect over /ws, receive a full-state snapshot, and every\n" +
		"accepted mutation is broadcast to all connected clients.",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagAdminSecret, "admin-secret", "", "shared admin secret (overrides config)")
}

func run(cmd *cobra.Command, _ []string) error {
	bootLogger := log.New("info")

	cfg, cfgPath, err := config.Load(bootLogger, flagConfig)
	if err != nil {
		return err
	}
	cfg.UpdateFrom(config.Config{
		Addr:        flagAddr,
		LogLevel:    flagLogLevel,
		AdminSecret: flagAdminSecret,
	})

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", cfgPath).Str("addr", cfg.Addr).Msg("starting counter broker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(&cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
