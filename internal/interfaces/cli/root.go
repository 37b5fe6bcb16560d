// Package cli defines the cobra command tree for running discoveries,
// inspecting verification history and maintaining the crawl cache from the
// terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/infrastructure/cache"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	Verbose      bool
}

// NewRootCommand creates the root command with global flags.  Subcommands
// are attached by RegisterCommands after the caller has wired services.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "veritrav",
		Short:   "veritrav CLI — verified place discovery and route construction",
		Long:    "veritrav discovers candidate places for a travel prompt, verifies them\nagainst independent sources, and assembles a district-clustered route.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./configs/config.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	return cmd
}

// CommandDependencies aggregates the wired services the subcommands need.
type CommandDependencies struct {
	Logger           logging.Logger
	DiscoveryService Discoverer
	CacheStore       cache.Store
	VerificationRepo discovery.VerificationRepository
}

// RegisterCommands attaches every subcommand to the root.  Called from
// main after dependency wiring.
func RegisterCommands(rootCmd *cobra.Command, rootOpts *RootOptions, deps CommandDependencies) {
	if deps.DiscoveryService != nil {
		rootCmd.AddCommand(NewDiscoverCmd(deps.DiscoveryService, rootOpts))
	}
	if deps.CacheStore != nil {
		rootCmd.AddCommand(NewCacheCmd(deps.CacheStore, deps.Logger))
	}
	if deps.VerificationRepo != nil {
		rootCmd.AddCommand(NewVerificationsCmd(deps.VerificationRepo, rootOpts))
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

//Personal.AI order the ending
