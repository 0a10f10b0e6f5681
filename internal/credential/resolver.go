package credential

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Resolver merges several backends into one view, consulting them in
// descending priority order.
type Resolver struct {
	backends []Backend
}

// NewResolver returns a resolver over the given backends, highest
// priority first. Registration order breaks ties.
func NewResolver(backends ...Backend) *Resolver {
	sorted := make([]Backend, len(backends))
	copy(sorted, backends)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Resolver{backends: sorted}
}

// Backends returns the registered backends in resolution order.
func (r *Resolver) Backends() []Backend { return r.backends }

// Get resolves id from the highest-priority available backend that
// holds it. Returns (nil, nil) when no backend does.
func (r *Resolver) Get(ctx context.Context, id ID) (*StoredCredential, error) {
	for _, b := range r.backends {
		if !b.Available(ctx) {
			continue
		}
		cred, err := b.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", b.Name(), err)
		}
		if cred != nil {
			return cred, nil
		}
	}
	return nil, nil
}

// Set stores the credential in the highest-priority available backend
// that accepts writes. Read-only backends are skipped; if every backend
// is read-only, ErrUnsupported is surfaced.
func (r *Resolver) Set(ctx context.Context, id ID, cred StoredCredential) error {
	for _, b := range r.backends {
		if !b.Available(ctx) {
			continue
		}
		err := b.Set(ctx, id, cred)
		if !errors.Is(err, ErrUnsupported) {
			return err
		}
	}
	return fmt.Errorf("no writable backend for %s: %w", id.Type, ErrUnsupported)
}

// Delete removes id from every available backend, reporting whether any
// backend actually deleted something.
func (r *Resolver) Delete(ctx context.Context, id ID) (bool, error) {
	deleted := false
	for _, b := range r.backends {
		if !b.Available(ctx) {
			continue
		}
		ok, err := b.Delete(ctx, id)
		if err != nil {
			return deleted, fmt.Errorf("backend %s: %w", b.Name(), err)
		}
		deleted = deleted || ok
	}
	return deleted, nil
}

// List merges the IDs of every available backend, de-duplicated, in
// backend priority order.
func (r *Resolver) List(ctx context.Context, f Filter) ([]ID, error) {
	seen := make(map[ID]bool)
	var merged []ID
	for _, b := range r.backends {
		if !b.Available(ctx) {
			continue
		}
		ids, err := b.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", b.Name(), err)
		}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				merged = append(merged, id)
			}
		}
	}
	return merged, nil
}
