// Package env abstracts the process environment behind a small key-value
// store interface so that code mutating authentication variables can be
// tested without touching the real environment.
package env

import "os"

// Store is a mutable string key-value store. The process environment is
// one implementation; tests use Map.
type Store interface {
	// Get returns the value for key, or "" if unset.
	Get(key string) string
	// Set assigns value to key, creating it if necessary.
	Set(key, value string)
	// Unset removes key. Removing an absent key is a no-op.
	Unset(key string)
}

type osStore struct{}

func (osStore) Get(key string) string { return os.Getenv(key) }
func (osStore) Set(key, value string) { _ = os.Setenv(key, value) }
func (osStore) Unset(key string)      { _ = os.Unsetenv(key) }

// OS returns a Store backed by the real process environment.
func OS() Store { return osStore{} }

// Map is an in-memory Store for tests. The zero value is ready to use.
type Map struct {
	vars map[string]string
}

// Get returns the value for key, or "" if unset.
func (m *Map) Get(key string) string { return m.vars[key] }

// Set assigns value to key.
func (m *Map) Set(key, value string) {
	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[key] = value
}

// Unset removes key.
func (m *Map) Unset(key string) { delete(m.vars, key) }

// Len returns the number of keys currently set.
func (m *Map) Len() int { return len(m.vars) }
