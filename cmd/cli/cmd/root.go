// Package cmd provides the CLI commands for copyshop.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"copyshop-pricing/adapters/pricebook"
	"copyshop-pricing/core/output"
	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/config"
	"copyshop-pricing/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	bookPath     string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "copyshop",
	Short: "Price print jobs and reservations",
	Long: `copyshop prices print jobs from a price book.

It resolves paper and cover prices, applies rounding and manual
adjustments, and groups related publications in a reservation so
that rounding is applied once per group.

Examples:
  copyshop price --paper A4 --pages 200 --round
  copyshop quote reservation.json --format json
  copyshop groups reservation.json --mode one-hop
  copyshop book validate pricebook.hcl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.copyshop.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&bookPath, "book", "b", "", "price book file (.hcl or .json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".copyshop.json")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadBook reads the price book named by --book or the configuration
func loadBook() (*types.PriceSettings, error) {
	cfg := config.Get()
	path := bookPath
	if path == "" {
		path = cfg.Pricing.PriceBook
	}

	settings, err := pricebook.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Pricing.Currency != "" {
		settings.Currency = cfg.Pricing.Currency
	}
	return settings, nil
}

// formatter returns the formatter named by --format or the configuration
func formatter() (output.Formatter, error) {
	name := outputFormat
	if name == "" {
		name = config.Get().Output.DefaultFormat
	}
	return output.NewRegistry().Get(name)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "copyshop version %s\n", Version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".copyshop.json")
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
