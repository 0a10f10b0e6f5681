package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/craft-agent/craft/internal/authenv"
	"github.com/craft-agent/craft/internal/config"
	"github.com/craft-agent/craft/internal/credential"
	"github.com/craft-agent/craft/internal/env"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [--] [command...]",
	Short: "Run the AI client with a configured auth environment",
	Long: `Resolve credentials through the backend layer, project them into the
authentication environment, and exec the client so it inherits exactly
the right variables.

Without arguments the configured client command is run (config.yaml
client.command, default "claude"). OAuth wins over proxy, proxy over a
bare API key.

Examples:
  CRAFT_ANTHROPIC_API_KEY=sk-ant-api-... craft run
  craft run -- claude --continue`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	st := env.OS()
	resolver := credential.NewResolver(credential.NewEnvBackend(st))

	creds, ok, err := resolveCredentials(cmd.Context(), st, resolver)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no credentials found\n\nRun 'craft login' or set CRAFT_ANTHROPIC_API_KEY")
	}
	authenv.Apply(st, creds)

	cfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	argv := args
	if len(argv) == 0 {
		argv = []string{cfg.Client.Command}
	}

	slog.Debug("launching client", "command", argv[0], "mode", string(creds.Mode))

	c := exec.CommandContext(cmd.Context(), argv[0], argv[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err = c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}

// resolveCredentials picks the credential variant the current
// environment supports. OAuth first, then a configured proxy, then a
// direct API key. The bool is false when nothing usable was found.
func resolveCredentials(ctx context.Context, st env.Store, r *credential.Resolver) (authenv.Credentials, bool, error) {
	get := func(t credential.Type) (string, error) {
		cred, err := r.Get(ctx, credential.ID{Type: t})
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", t, err)
		}
		if cred == nil {
			return "", nil
		}
		return cred.Value, nil
	}

	oauth, err := get(credential.TypeClaudeOAuth)
	if err != nil {
		return authenv.Credentials{}, false, err
	}
	if oauth != "" {
		return authenv.OAuthToken(oauth), true, nil
	}

	authToken, err := get(credential.TypeAnthropicAuthToken)
	if err != nil {
		return authenv.Credentials{}, false, err
	}
	apiKey, err := get(credential.TypeAnthropicAPIKey)
	if err != nil {
		return authenv.Credentials{}, false, err
	}

	baseURL := authenv.BaseURL(st)
	if baseURL != "" && (authToken != "" || apiKey != "") {
		return authenv.Proxy(baseURL, authToken, apiKey), true, nil
	}
	if apiKey != "" {
		return authenv.APIKey(apiKey, baseURL), true, nil
	}
	return authenv.Credentials{}, false, nil
}
