package cli

import (
	"fmt"

	"github.com/craft-agent/craft/internal/authenv"
	"github.com/craft-agent/craft/internal/env"
	"github.com/craft-agent/craft/internal/ui"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the authentication environment",
	Long: `Clear all managed authentication variables. Safe to run repeatedly.

Wrap with eval to clear them in your shell as well:
  eval "$(craft logout)"`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	st := env.OS()
	authenv.Clear(st)

	for _, name := range authenv.Slots() {
		fmt.Fprintln(cmd.OutOrStdout(), "unset "+name)
	}
	ui.Infof("%s Authentication environment cleared.", ui.OKTag())
	return nil
}
