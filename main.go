package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkumar84/Insurance-Dashboard/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "insurance-dashboard",
	Short: "InsureAI operations dashboard backed by generated demo data",
	Long: `Serves the InsureAI dashboard API over a randomly generated dataset of
policies, claims, underwriting cases, marketing opportunities, sales and
e-applications, with simulated AI assistance on top.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("config file not found, using defaults", "path", configPath)
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
