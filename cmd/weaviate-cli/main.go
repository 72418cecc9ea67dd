package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cuemby/weaviate-client-go/pkg/auth"
	"github.com/cuemby/weaviate-client-go/pkg/client"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weaviate-cli",
	Short: "Command-line companion for Weaviate deployments",
	Long: `weaviate-cli talks to a Weaviate deployment over its REST and gRPC
APIs: server identity and health, schema inspection, and backups.

Connection settings come from flags or a YAML config file.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"weaviate-cli version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("host", "localhost:8080", "Weaviate host:port")
	rootCmd.PersistentFlags().String("scheme", "http", "Connection scheme (http or https)")
	rootCmd.PersistentFlags().String("grpc-host", "", "gRPC host:port (derived from host when empty)")
	rootCmd.PersistentFlags().String("api-key", "", "API key credential")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Per-command timeout")

	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(readyCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(backupCmd)
}

// fileConfig is the YAML config file shape.
type fileConfig struct {
	Host     string `yaml:"host"`
	Scheme   string `yaml:"scheme"`
	GRPCHost string `yaml:"grpc_host"`
	APIKey   string `yaml:"api_key"`
}

// buildConfig merges the config file (when given) with flags; flags that
// were set explicitly win.
func buildConfig(cmd *cobra.Command) (client.Config, error) {
	cfg := client.Config{}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.Host = fc.Host
		cfg.Scheme = fc.Scheme
		cfg.GRPCHost = fc.GRPCHost
		if fc.APIKey != "" {
			cfg.Auth = auth.ApiKey{Key: fc.APIKey}
		}
	}

	if cfg.Host == "" || cmd.Flags().Changed("host") {
		cfg.Host, _ = cmd.Flags().GetString("host")
	}
	if cfg.Scheme == "" || cmd.Flags().Changed("scheme") {
		cfg.Scheme, _ = cmd.Flags().GetString("scheme")
	}
	if cmd.Flags().Changed("grpc-host") {
		cfg.GRPCHost, _ = cmd.Flags().GetString("grpc-host")
	}
	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		cfg.Auth = auth.ApiKey{Key: key}
	}

	// CLI commands are one-shot control-plane calls; skip the dial-time
	// health probe so a down data plane does not block them.
	cfg.SkipInitChecks = true
	return cfg, nil
}

// withClient connects, runs fn within the command timeout, and closes.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	c := client.New(cfg)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	defer c.Close(ctx)
	return fn(ctx, c)
}

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Show server identity and enabled modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			meta, err := c.Meta(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Hostname: %s\n", meta.Hostname)
			fmt.Printf("Version:  %s\n", meta.Version)
			if len(meta.Modules) > 0 {
				fmt.Println("Modules:")
				for name := range meta.Modules {
					fmt.Printf("  - %s\n", name)
				}
			}
			return nil
		})
	},
}

var readyCmd = &cobra.Command{
	Use:   "ready",
	Short: "Check whether the server accepts traffic",
	RunE: func(cmd *cobra.Command, args []string) error {
		return probeCmd(cmd, "ready", func(ctx context.Context, c *client.Client) (bool, error) {
			return c.IsReady(ctx)
		})
	},
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Check whether the server process is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		return probeCmd(cmd, "live", func(ctx context.Context, c *client.Client) (bool, error) {
			return c.IsLive(ctx)
		})
	},
}

func probeCmd(cmd *cobra.Command, name string, probe func(context.Context, *client.Client) (bool, error)) error {
	return withClient(cmd, func(ctx context.Context, c *client.Client) error {
		ok, err := probe(ctx, c)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("server is not %s", name)
		}
		fmt.Printf("Server is %s\n", name)
		return nil
	})
}
