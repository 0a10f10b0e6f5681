package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/craft-agent/craft/internal/authenv"
	"github.com/craft-agent/craft/internal/credential"
	"github.com/craft-agent/craft/internal/env"
	"github.com/craft-agent/craft/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginAPIKey    string
	loginOAuth     string
	loginBaseURL   string
	loginAuthToken string
)

var loginCmd = &cobra.Command{
	Use:   "login <mode>",
	Short: "Switch the authentication mode",
	Long: `Switch the authentication mode of the AI client.

Modes:
  api-key   Direct Anthropic API key, optionally with a custom endpoint
  oauth     Claude OAuth token
  proxy     Third-party-compatible endpoint with a bearer token and/or API key

Secrets come from flags, from credentials already present in the
environment (CRAFT_-prefixed variables take precedence), or from an
interactive prompt. All four managed variables are rewritten on every
login, so switching modes never leaves stale configuration behind.

Environment changes cannot outlive this process on their own; craft
prints eval-able shell statements to stdout for that.

Examples:
  eval "$(craft login api-key)"
  eval "$(craft login oauth --oauth-token sk-ant-oat-...)"
  eval "$(craft login proxy --base-url https://llm.corp.example --auth-token t0k)"`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginAPIKey, "api-key", "", "Anthropic API key (api-key and proxy modes)")
	loginCmd.Flags().StringVar(&loginOAuth, "oauth-token", "", "Claude OAuth token (oauth mode)")
	loginCmd.Flags().StringVar(&loginBaseURL, "base-url", "", "custom API endpoint (required for proxy mode)")
	loginCmd.Flags().StringVar(&loginAuthToken, "auth-token", "", "proxy bearer token (proxy mode)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	backend := credential.NewEnvBackend(nil)

	var creds authenv.Credentials
	switch args[0] {
	case "api-key":
		key := loginAPIKey
		if key == "" {
			if val, name := backend.ResolveVar(credential.TypeAnthropicAPIKey); val != "" {
				key = val
				ui.Infof("Using API key from %s environment variable", name)
			}
		}
		if key == "" {
			var err error
			key, err = promptSecret("API key")
			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}
		}
		if key == "" {
			return fmt.Errorf("API key cannot be empty")
		}
		creds = authenv.APIKey(key, loginBaseURL)

	case "oauth":
		token := loginOAuth
		if token == "" {
			if val, name := backend.ResolveVar(credential.TypeClaudeOAuth); val != "" {
				token = val
				ui.Infof("Using OAuth token from %s environment variable", name)
			}
		}
		if token == "" {
			var err error
			token, err = promptSecret("OAuth token")
			if err != nil {
				return fmt.Errorf("reading OAuth token: %w", err)
			}
		}
		if token == "" {
			return fmt.Errorf("OAuth token cannot be empty")
		}
		creds = authenv.OAuthToken(token)

	case "proxy":
		if loginBaseURL == "" {
			return fmt.Errorf("--base-url is required for proxy mode")
		}
		if loginAuthToken == "" && loginAPIKey == "" {
			ui.Warnf("proxy mode without --auth-token or --api-key; requests will likely be rejected")
		}
		creds = authenv.Proxy(loginBaseURL, loginAuthToken, loginAPIKey)

	default:
		return fmt.Errorf("unknown mode %q (expected api-key, oauth, or proxy)", args[0])
	}

	st := env.OS()
	authenv.Apply(st, creds)

	for _, line := range shellLines(st) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	ui.Infof("%s Switched to %s auth. Wrap with eval to update your shell.", ui.OKTag(), creds.Mode)
	return nil
}

// promptSecret reads a secret without echo when stdin is a terminal,
// and as a plain line otherwise (pipes, CI).
func promptSecret(label string) (string, error) {
	if !ui.StdinIsTerminal() {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Fprintf(os.Stderr, "%s: ", label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
