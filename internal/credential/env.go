package credential

import (
	"context"

	"github.com/craft-agent/craft/internal/env"
)

// PriorityEnv is the ordering weight of the environment backend. It
// outranks the file backend (weight 100) so an exported variable wins
// over a stored credential.
const PriorityEnv = 110

// envVarNames maps each credential type to the environment variables
// that may hold it, in precedence order: the first non-empty variable
// wins, so a CRAFT_-prefixed override beats the generic name.
//
// Note the OAuth variable is CRAFT_CLAUDE_OAUTH_TOKEN, not the
// CLAUDE_CODE_OAUTH_TOKEN the auth configurator writes for the client.
// The CRAFT_ name is this tool's override channel; the two are kept
// distinct deliberately.
var envVarNames = map[Type][]string{
	TypeAnthropicAPIKey:    {"CRAFT_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
	TypeClaudeOAuth:        {"CRAFT_CLAUDE_OAUTH_TOKEN"},
	TypeAnthropicAuthToken: {"ANTHROPIC_AUTH_TOKEN"},
}

// EnvBackend resolves credentials from environment variables. It is
// strictly read-only and serves only global-scope identities.
type EnvBackend struct {
	env env.Store
}

// NewEnvBackend returns an environment-variable backend over st. A nil
// st uses the real process environment.
func NewEnvBackend(st env.Store) *EnvBackend {
	if st == nil {
		st = env.OS()
	}
	return &EnvBackend{env: st}
}

// Name implements Backend.
func (b *EnvBackend) Name() string { return "env" }

// Priority implements Backend.
func (b *EnvBackend) Priority() int { return PriorityEnv }

// Available implements Backend. The environment is always readable.
func (b *EnvBackend) Available(ctx context.Context) bool { return true }

// Get implements Backend. Workspace-scoped IDs, unmapped types, and
// all-empty variables resolve to (nil, nil).
func (b *EnvBackend) Get(ctx context.Context, id ID) (*StoredCredential, error) {
	if id.WorkspaceID != "" {
		return nil, nil
	}
	if val, _ := b.resolve(id.Type); val != "" {
		return &StoredCredential{Value: val}, nil
	}
	return nil, nil
}

// Set implements Backend. Writing through to the process environment
// would not persist anywhere, so this is rejected loudly rather than
// silently dropped.
func (b *EnvBackend) Set(ctx context.Context, id ID, cred StoredCredential) error {
	return ErrUnsupported
}

// Delete implements Backend. Nothing is ever deleted; unlike Set this
// is not an error, since "nothing to delete" is a normal outcome for
// callers clearing a credential across all backends.
func (b *EnvBackend) Delete(ctx context.Context, id ID) (bool, error) {
	return false, nil
}

// List implements Backend. The filter is ignored: the backend serves a
// fixed handful of global types and filtering them buys nothing.
func (b *EnvBackend) List(ctx context.Context, f Filter) ([]ID, error) {
	var ids []ID
	for _, t := range Types() {
		if val, _ := b.resolve(t); val != "" {
			ids = append(ids, ID{Type: t})
		}
	}
	return ids, nil
}

// ResolveVar returns the value and the variable name that supplied it,
// for status displays. Empty strings when nothing is set.
func (b *EnvBackend) ResolveVar(t Type) (value, name string) {
	return b.resolve(t)
}

func (b *EnvBackend) resolve(t Type) (value, name string) {
	for _, n := range envVarNames[t] {
		if v := b.env.Get(n); v != "" {
			return v, n
		}
	}
	return "", ""
}
