package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikekulinski/zkclient/pkg/client"
	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath     string
	endpoint       string
	sessionTimeout time.Duration
	logLevel       string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:          "zkcli",
		Short:        "Read, write and watch nodes of a coordination server",
		SilenceUsage: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "TOML configuration file")
	pf.StringVarP(&g.endpoint, "endpoint", "e", "", "server address, overrides the configuration")
	pf.DurationVar(&g.sessionTimeout, "session-timeout", 0, "requested session timeout")
	pf.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error")

	cmd.AddCommand(
		newCreateCmd(g),
		newGetCmd(g),
		newSetCmd(g),
		newDeleteCmd(g),
		newLsCmd(g),
		newStatCmd(g),
		newWatchCmd(g),
		newPatchCmd(g),
	)
	return cmd
}

func (g *globalFlags) clientConfig() (config.Client, error) {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return config.Client{}, err
		}
		cfg = loaded
	}
	if g.endpoint != "" {
		cfg.Client.Endpoint = g.endpoint
	}
	if g.sessionTimeout > 0 {
		cfg.Client.SessionTimeout = g.sessionTimeout
	}
	if g.logLevel != "" {
		cfg.Client.LogLevel = g.logLevel
	}
	return cfg.Client, cfg.Client.Validate()
}

// withClient runs fn with a connected session and closes it afterwards.
func (g *globalFlags) withClient(ctx context.Context, fn func(*client.Client) error) error {
	cfg, err := g.clientConfig()
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZap(level, os.Stderr)
	defer func() { _ = logger.Sync() }()

	c, err := client.Connect(ctx, cfg.Endpoint, client.FromConfig(cfg), client.WithLogger(logger))
	if err != nil {
		return err
	}
	err = fn(c)
	if closeErr := c.Close(); err == nil {
		err = closeErr
	}
	return err
}
