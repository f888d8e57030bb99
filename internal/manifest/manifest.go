// Package manifest models the declarative color manifest: per icon, which
// semantic slots exist, their default colors, and the literal fill each slot
// replaces in the raw template.
package manifest

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync"

	"github.com/pharmakit/icontint/internal/icons"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// Slot roles form a closed set; the engine applies them in this order so
// that ascent2 derivation can observe the effective ascent1 value.
const (
	RoleBackground = "background"
	RoleAscent1    = "ascent1"
	RoleAscent2    = "ascent2"
	RoleCap        = "cap"
)

// RoleOrder is the fixed evaluation order for slot substitution.
var RoleOrder = []string{RoleBackground, RoleAscent1, RoleAscent2, RoleCap}

// Slot describes one semantic color role within an icon entry.
type Slot struct {
	Role         string `json:"role" validate:"required,oneof=background ascent1 ascent2 cap"`
	DefaultColor string `json:"default_color" validate:"required,icon_hex"`
	// MapByColor is the literal fill value to replace in the template.
	// When empty, DefaultColor doubles as the substitution literal.
	MapByColor string `json:"map_by_color,omitempty" validate:"omitempty,icon_hex"`
	// ApplyDefaultIfAIMissing controls whether a background substitution
	// fires when the caller supplies no background color.
	ApplyDefaultIfAIMissing bool `json:"apply_default_if_ai_missing,omitempty"`
}

// Literal returns the fill value this slot replaces in the raw template.
func (s Slot) Literal() string {
	if s.MapByColor != "" {
		return s.MapByColor
	}
	return s.DefaultColor
}

// Icon is the ordered slot set for one icon key.
type Icon struct {
	Slots []Slot `json:"slots" validate:"required,min=1,dive"`
}

// Slot returns the first slot with the given role, if any.
func (ic Icon) Slot(role string) (Slot, bool) {
	for _, s := range ic.Slots {
		if s.Role == role {
			return s, true
		}
	}
	return Slot{}, false
}

// Manifest maps icon keys to their slot specifications.
type Manifest struct {
	Icons map[string]Icon `json:"icons" validate:"required,min=1"`
}

// Icon looks up the entry for a normalized icon key.
func (m *Manifest) Icon(key string) (Icon, bool) {
	ic, ok := m.Icons[icons.CanonicalKey(key)]
	return ic, ok
}

// Parse decodes and validates manifest JSON.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, tinterrors.NewParseError("manifest", 0, err)
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads, decodes, and validates a manifest file from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinterrors.NewParseError(path, 0, err)
	}
	m, err := Parse(data)
	if err != nil {
		if parseErr, ok := err.(*tinterrors.ParseError); ok {
			parseErr.Path = path
		}
		return nil, err
	}
	return m, nil
}

//go:embed default.json
var defaultManifest []byte

var (
	defaultOnce sync.Once
	defaultM    *Manifest
)

// Default returns the built-in manifest covering the full icon sheet. The
// embedded document is validated once; a defect in it is a programmer error.
func Default() *Manifest {
	defaultOnce.Do(func() {
		m, err := Parse(defaultManifest)
		if err != nil {
			panic("manifest: embedded default is invalid: " + err.Error())
		}
		defaultM = m
	})
	return defaultM
}
