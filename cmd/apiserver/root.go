// cmd/apiserver/root.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aleka07/movie-api/pkg/config"
	"github.com/aleka07/movie-api/pkg/logging"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// flagValues holds the raw CLI flags before they are merged into a Config.
type flagValues struct {
	configPath  string
	host        string
	port        int
	logLevel    string
	catalogPath string
	databaseDSN string
}

func newRootCmd() *cobra.Command {
	flags := &flagValues{}

	root := &cobra.Command{
		Use:          "apiserver",
		Short:        "Movie catalog HTTP API",
		Long:         "Serves a fixed, in-memory movie catalog as JSON together with a liveness probe.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	registerServeFlags(root.Flags(), flags)
	root.PersistentFlags().StringVar(&flags.configPath, "config", "config.toml", fmt.Sprintf("Path to the TOML configuration file. (Env: %s)", config.EnvConfigPath))

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	registerServeFlags(serve.Flags(), flags)

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}

	root.AddCommand(serve, version)
	return root
}

func registerServeFlags(fs *pflag.FlagSet, flags *flagValues) {
	fs.StringVar(&flags.host, "host", "", fmt.Sprintf("Interface to bind. (Env: %s, default %s)", config.EnvHost, config.DefaultHost))
	fs.IntVar(&flags.port, "port", 0, fmt.Sprintf("Port for the HTTP server. (Env: %s, default %d)", config.EnvPort, config.DefaultPort))
	fs.StringVar(&flags.logLevel, "log-level", "", fmt.Sprintf("Logging level: trace, debug, info, warn, error. (Env: %s)", config.EnvLogLevel))
	fs.StringVar(&flags.catalogPath, "catalog", "", fmt.Sprintf("YAML file to seed the movie catalog from. (Env: %s)", config.EnvCatalogPath))
	fs.StringVar(&flags.databaseDSN, "database-dsn", "", fmt.Sprintf("PostgreSQL DSN to seed the movie catalog from. (Env: %s)", config.EnvDatabaseDSN))
}

// resolveConfig merges file, environment and flags. Flags win.
func resolveConfig(cmd *cobra.Command, flags *flagValues) (*config.Config, error) {
	path := flags.configPath
	if envPath := os.Getenv(config.EnvConfigPath); envPath != "" && !cmd.Flags().Changed("config") {
		path = envPath
	}

	cfg, err := config.Load(path) // File, then env, then defaults
	if err != nil {
		return nil, err
	}

	// --- CLI Flags (take precedence) ---
	fs := cmd.Flags()
	if fs.Changed("host") {
		cfg.Server.Host = flags.host
	}
	if fs.Changed("port") {
		cfg.Server.Port = flags.port
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if fs.Changed("catalog") {
		cfg.Catalog.Path = flags.catalogPath
	}
	if fs.Changed("database-dsn") {
		cfg.Catalog.DatabaseDSN = flags.databaseDSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, flags *flagValues) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, logger)
}

// contextOrBackground guards against cobra commands executed without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
