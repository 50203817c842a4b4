package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/server"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		listen     string
		dataDir    string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:           "zkserver",
		Short:         "Run a single node coordination server",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			flags := cmd.Flags()
			if flags.Changed("listen") {
				cfg.Server.Listen = listen
			}
			if flags.Changed("data-dir") {
				cfg.Server.DataDir = dataDir
			}
			if flags.Changed("log-level") {
				cfg.Server.LogLevel = logLevel
			}
			if err := cfg.Server.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg.Server)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of the transaction log, empty keeps everything in memory")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, cfg config.Server) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZap(level, os.Stderr)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer(server.WithConfig(cfg), server.WithLogger(logger))
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		_ = srv.Close()
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}
	logger.Infof("listening on %s", lis.Addr())
	if err := srv.Serve(ctx, lis); err != nil {
		_ = srv.Close()
		return err
	}
	logger.Infof("shutting down at zxid %d", srv.LastZxid())
	return srv.Close()
}
