package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/craft-agent/craft/internal/authenv"
	"github.com/craft-agent/craft/internal/credential"
	"github.com/craft-agent/craft/internal/env"
	"github.com/craft-agent/craft/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active auth mode and available credentials",
	Long: `Display the current authentication state:
- The auth mode the environment reflects
- Whether a proxy endpoint is fully configured
- Credentials visible to the backend layer (values masked)`,
	Args: cobra.NoArgs,
	RunE: showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusOutput struct {
	Mode            string     `json:"mode,omitempty"`
	ProxyConfigured bool       `json:"proxy_configured"`
	BaseURL         string     `json:"base_url,omitempty"`
	Credentials     []credInfo `json:"credentials"`
}

type credInfo struct {
	Type     string `json:"type"`
	Variable string `json:"variable"`
	Value    string `json:"value"` // masked
}

func showStatus(cmd *cobra.Command, args []string) error {
	st := env.OS()
	backend := credential.NewEnvBackend(st)
	resolver := credential.NewResolver(backend)

	ids, err := resolver.List(cmd.Context(), credential.Filter{})
	if err != nil {
		return fmt.Errorf("listing credentials: %w", err)
	}

	out := statusOutput{
		ProxyConfigured: authenv.ProxyConfigured(st),
		BaseURL:         authenv.BaseURL(st),
	}
	if mode, ok := authenv.ActiveMode(st); ok {
		out.Mode = string(mode)
	}
	for _, id := range ids {
		val, name := backend.ResolveVar(id.Type)
		out.Credentials = append(out.Credentials, credInfo{
			Type:     string(id.Type),
			Variable: name,
			Value:    mask(val),
		})
	}

	w := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if out.Mode == "" {
		fmt.Fprintf(w, "Mode:  %s\n", ui.Dim("not configured"))
	} else {
		fmt.Fprintf(w, "Mode:  %s\n", ui.Bold(out.Mode))
	}
	if out.BaseURL != "" {
		fmt.Fprintf(w, "Endpoint: %s\n", out.BaseURL)
		if out.ProxyConfigured {
			fmt.Fprintf(w, "Proxy: %s configured\n", ui.OKTag())
		} else {
			fmt.Fprintf(w, "Proxy: %s base URL set but no auth token or API key\n", ui.WarnTag())
		}
	}

	fmt.Fprintln(w)
	if len(out.Credentials) == 0 {
		fmt.Fprintln(w, "No credentials found in the environment.")
		fmt.Fprintln(w, "Run 'craft login' or set CRAFT_ANTHROPIC_API_KEY.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tVARIABLE\tVALUE")
	for _, c := range out.Credentials {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Type, c.Variable, c.Value)
	}
	return tw.Flush()
}
