// Package cli implements the craft command-line interface using Cobra.
// It provides commands for switching authentication modes, inspecting
// credential state, and running the wrapped AI client.
package cli

import (
	"path/filepath"

	"github.com/craft-agent/craft/internal/config"
	"github.com/craft-agent/craft/internal/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "craft",
	Short: "Craft - credential configuration for a command-line AI client",
	Long: `Craft configures authentication for a command-line AI client.

It switches between authentication modes (direct API key, Claude OAuth
token, third-party proxy) by projecting exactly the right environment
variables, and resolves credentials already present in the environment
through a priority-ordered backend layer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		globalCfg, _ := config.LoadGlobal()
		debugDir := filepath.Join(config.GlobalConfigDir(), "debug")

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      debugDir,
			RetentionDays: globalCfg.Debug.RetentionDays,
		}); err != nil {
			// Log init failure is non-fatal - fall back to the default
			// logger and keep going.
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	defer log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}
