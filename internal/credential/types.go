// Package credential provides pluggable credential backends and a
// priority-ordered resolver over them.
package credential

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by backends that do not support a
// requested write operation. Callers check it with errors.Is.
var ErrUnsupported = errors.New("operation not supported by backend")

// Type identifies a logical credential kind.
type Type string

const (
	TypeAnthropicAPIKey    Type = "anthropic_api_key"
	TypeClaudeOAuth        Type = "claude_oauth"
	TypeAnthropicAuthToken Type = "anthropic_auth_token"
)

// Types returns all known credential types.
func Types() []Type {
	return []Type{TypeAnthropicAPIKey, TypeClaudeOAuth, TypeAnthropicAuthToken}
}

// ID identifies a stored credential. An empty WorkspaceID means global
// scope; backends that only serve global credentials treat scoped IDs
// as not found.
type ID struct {
	Type        Type   `json:"type"`
	WorkspaceID string `json:"workspace_id,omitempty"`
}

// StoredCredential is a resolved secret value.
type StoredCredential struct {
	Value string `json:"value"`
}

// Filter narrows a List call. The zero value matches everything.
// Backends may ignore fields they cannot filter on.
type Filter struct {
	Type        Type
	WorkspaceID string
}

// Backend is a credential provider. Several backends can be registered
// with a Resolver, which consults them in Priority order (higher
// first). Methods take a context because some implementations (file,
// keychain) perform real I/O; implementations that do not may ignore
// it.
//
// Get returns (nil, nil) when the credential is not found; a non-nil
// error is reserved for genuine failures.
type Backend interface {
	// Name identifies the backend in logs and status output.
	Name() string
	// Priority orders backends in a Resolver; higher wins.
	Priority() int
	// Available reports whether the backend can serve requests.
	Available(ctx context.Context) bool
	// Get resolves a credential, or (nil, nil) when absent.
	Get(ctx context.Context, id ID) (*StoredCredential, error)
	// Set stores a credential. Read-only backends return ErrUnsupported.
	Set(ctx context.Context, id ID, cred StoredCredential) error
	// Delete removes a credential, reporting whether anything was
	// removed. Read-only backends return (false, nil).
	Delete(ctx context.Context, id ID) (bool, error)
	// List returns the IDs the backend can currently resolve. Values
	// are never included.
	List(ctx context.Context, f Filter) ([]ID, error)
}
