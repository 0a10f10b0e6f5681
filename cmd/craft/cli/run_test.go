package cli

import (
	"context"
	"testing"

	"github.com/craft-agent/craft/internal/authenv"
	"github.com/craft-agent/craft/internal/credential"
	"github.com/craft-agent/craft/internal/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFrom(t *testing.T, st *env.Map) (authenv.Credentials, bool) {
	t.Helper()
	r := credential.NewResolver(credential.NewEnvBackend(st))
	creds, ok, err := resolveCredentials(context.Background(), st, r)
	require.NoError(t, err)
	return creds, ok
}

func TestResolveCredentials_Nothing(t *testing.T) {
	_, ok := resolveFrom(t, &env.Map{})
	assert.False(t, ok)
}

func TestResolveCredentials_OAuthWins(t *testing.T) {
	var st env.Map
	st.Set("CRAFT_CLAUDE_OAUTH_TOKEN", "oat")
	st.Set("ANTHROPIC_API_KEY", "key")
	st.Set("ANTHROPIC_BASE_URL", "https://p")

	creds, ok := resolveFrom(t, &st)
	require.True(t, ok)
	assert.Equal(t, authenv.ModeOAuth, creds.Mode)
	assert.Equal(t, "oat", creds.OAuthToken)
}

func TestResolveCredentials_Proxy(t *testing.T) {
	var st env.Map
	st.Set("ANTHROPIC_BASE_URL", "https://p")
	st.Set("ANTHROPIC_AUTH_TOKEN", "tok")

	creds, ok := resolveFrom(t, &st)
	require.True(t, ok)
	assert.Equal(t, authenv.ModeProxy, creds.Mode)
	assert.Equal(t, "https://p", creds.BaseURL)
	assert.Equal(t, "tok", creds.AuthToken)
}

func TestResolveCredentials_APIKey(t *testing.T) {
	var st env.Map
	st.Set("CRAFT_ANTHROPIC_API_KEY", "override")
	st.Set("ANTHROPIC_API_KEY", "generic")

	creds, ok := resolveFrom(t, &st)
	require.True(t, ok)
	assert.Equal(t, authenv.ModeAPIKey, creds.Mode)
	assert.Equal(t, "override", creds.APIKey)
}

func TestResolveCredentials_BaseURLAloneIsNotEnough(t *testing.T) {
	var st env.Map
	st.Set("ANTHROPIC_BASE_URL", "https://p")

	_, ok := resolveFrom(t, &st)
	assert.False(t, ok)
}
