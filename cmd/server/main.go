package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/config"
	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/serverapp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type serverFlags struct {
	host       string
	port       int
	configPath string
	transport  string
}

func newRootCmd() *cobra.Command {
	flags := &serverFlags{}

	cmd := &cobra.Command{
		Use:           "taskmaster",
		Short:         "Task Master MCP server",
		Long:          "HTTP server exposing task CRUD as MCP-style functions behind basic auth.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(flags)
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "host to bind to (overrides config)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "port to bind to (overrides config)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a yaml config file")
	cmd.Flags().StringVar(&flags.transport, "transport", "http", "transport protocol (only http is supported)")

	return cmd
}

func runServer(flags *serverFlags) error {
	if flags.transport != "http" {
		return fmt.Errorf("transport %s not supported", flags.transport)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.host != "" {
		cfg.Server.Host = flags.host
	}
	if flags.port != 0 {
		cfg.Server.Port = flags.port
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("listening", zap.String("addr", addr), zap.String("server", cfg.Server.Name))
	return http.ListenAndServe(addr, handler)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv(), nil
	}
	return config.Load(path)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
