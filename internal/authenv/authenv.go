// Package authenv configures the authentication environment variables
// consumed by the AI client. Exactly one authentication mode is active
// at a time; switching modes never leaves variables from the previous
// mode behind.
package authenv

import "github.com/craft-agent/craft/internal/env"

// Environment variables managed by this package. These four form a
// single mutually-exclusive register: applying a credential clears all
// of them first, then sets only the ones the mode requires.
const (
	// EnvAPIKey carries a direct Anthropic API key, or the fallback
	// API key in proxy mode.
	EnvAPIKey = "ANTHROPIC_API_KEY"
	// EnvOAuthToken carries a Claude Code OAuth token.
	EnvOAuthToken = "CLAUDE_CODE_OAUTH_TOKEN"
	// EnvAuthToken carries the bearer token for a third-party proxy.
	EnvAuthToken = "ANTHROPIC_AUTH_TOKEN"
	// EnvBaseURL points the client at a custom or proxy endpoint.
	EnvBaseURL = "ANTHROPIC_BASE_URL"
)

// Slots returns the managed variable names in display order.
func Slots() []string {
	return []string{EnvAPIKey, EnvOAuthToken, EnvAuthToken, EnvBaseURL}
}

// Mode identifies an authentication mode.
type Mode string

const (
	// ModeAPIKey authenticates with a direct API key, optionally
	// against a custom endpoint.
	ModeAPIKey Mode = "api_key"
	// ModeOAuth authenticates with a Claude Code OAuth token.
	ModeOAuth Mode = "oauth_token"
	// ModeProxy authenticates through a third-party-compatible
	// endpoint with a bearer token and/or API key.
	ModeProxy Mode = "proxy"
)

// Credentials is a tagged union over the authentication modes. Only the
// fields relevant to Mode are consulted; constructors below populate
// the right ones.
type Credentials struct {
	Mode Mode

	// APIKey is required for ModeAPIKey, optional for ModeProxy.
	APIKey string
	// OAuthToken is required for ModeOAuth.
	OAuthToken string
	// BaseURL is required for ModeProxy, optional for ModeAPIKey.
	BaseURL string
	// AuthToken is the proxy bearer token, optional for ModeProxy.
	AuthToken string
}

// APIKey returns api_key credentials. baseURL may be empty.
func APIKey(key, baseURL string) Credentials {
	return Credentials{Mode: ModeAPIKey, APIKey: key, BaseURL: baseURL}
}

// OAuthToken returns oauth_token credentials.
func OAuthToken(token string) Credentials {
	return Credentials{Mode: ModeOAuth, OAuthToken: token}
}

// Proxy returns proxy credentials. At least one of authToken and apiKey
// is expected for a usable configuration, but this is not enforced.
func Proxy(baseURL, authToken, apiKey string) Credentials {
	return Credentials{Mode: ModeProxy, BaseURL: baseURL, AuthToken: authToken, APIKey: apiKey}
}

// Apply clears all managed slots, then sets the slots implied by the
// credential's mode. Values are written as-is; validation belongs to
// the caller. Clearing first guarantees a mode switch leaves no stale
// variable behind (a leftover base URL would silently redirect traffic
// after switching from proxy to OAuth).
func Apply(st env.Store, creds Credentials) {
	Clear(st)

	switch creds.Mode {
	case ModeAPIKey:
		st.Set(EnvAPIKey, creds.APIKey)
		if creds.BaseURL != "" {
			st.Set(EnvBaseURL, creds.BaseURL)
		}
	case ModeOAuth:
		// OAuth never combines with a custom base URL.
		st.Set(EnvOAuthToken, creds.OAuthToken)
	case ModeProxy:
		st.Set(EnvBaseURL, creds.BaseURL)
		if creds.AuthToken != "" {
			st.Set(EnvAuthToken, creds.AuthToken)
		}
		if creds.APIKey != "" {
			st.Set(EnvAPIKey, creds.APIKey)
		}
	}
}

// Clear unsets all managed slots. Idempotent.
func Clear(st env.Store) {
	for _, name := range Slots() {
		st.Unset(name)
	}
}

// ProxyConfigured reports whether a proxy endpoint is usable: a base
// URL plus at least one of auth token or API key. This is the single
// proxy predicate; every call site shares it.
func ProxyConfigured(st env.Store) bool {
	if st.Get(EnvBaseURL) == "" {
		return false
	}
	return st.Get(EnvAuthToken) != "" || st.Get(EnvAPIKey) != ""
}

// BaseURL returns the configured base URL, or "" when unset.
func BaseURL(st env.Store) string { return st.Get(EnvBaseURL) }

// AuthToken returns the configured proxy auth token, or "" when unset.
func AuthToken(st env.Store) string { return st.Get(EnvAuthToken) }

// ActiveMode reports which mode the environment currently reflects.
// OAuth wins over proxy, proxy over a bare API key. The second return
// is false when no managed slot is populated.
func ActiveMode(st env.Store) (Mode, bool) {
	switch {
	case st.Get(EnvOAuthToken) != "":
		return ModeOAuth, true
	case ProxyConfigured(st):
		return ModeProxy, true
	case st.Get(EnvAPIKey) != "":
		return ModeAPIKey, true
	default:
		return "", false
	}
}
