// Package icons exposes the read-only icon template store: a fixed set of
// SVG templates keyed by a stable identifier, loaded at build time as plain
// data. Templates never mutate after process start.
package icons

import (
	"strings"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// Store provides lookup over the immutable icon template set. It is safe
// for concurrent use; the underlying data is never written after New.
type Store struct {
	svgs  map[string]string
	order []string
}

// New returns a Store backed by the compiled-in template table.
func New() *Store {
	return &Store{svgs: iconSVGs, order: iconOrder}
}

// Get returns the raw SVG markup for the given icon key. Keys are
// case-insensitive and whitespace-trimmed. Unknown keys fail with a
// NotFoundError.
func (s *Store) Get(name string) (string, error) {
	key := CanonicalKey(name)
	svg, ok := s.svgs[key]
	if !ok {
		return "", tinterrors.NewNotFoundError("icon", name)
	}
	return svg, nil
}

// Has reports whether the store contains the given icon key.
func (s *Store) Has(name string) bool {
	_, ok := s.svgs[CanonicalKey(name)]
	return ok
}

// Keys returns the icon keys in canonical sheet order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// CanonicalKey normalizes an icon identifier for lookup.
func CanonicalKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
