// Package recolor implements the icon recoloring engine: exact,
// attribute-scoped substitution of manifest-declared fill values in an SVG
// template. Only fill="..." tokens are ever touched; strokes, opacity,
// geometry, and sizing survive byte for byte.
package recolor

import (
	"regexp"

	"github.com/pharmakit/icontint/internal/color"
	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/manifest"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// ColorInput carries the caller-supplied colors, at most one per slot role.
// Empty fields mean "use the manifest default or derive". Values must be
// well-formed hex or absent; named colors are resolved upstream by
// color.Sanitize before they reach the engine.
type ColorInput struct {
	Background string `json:"background,omitempty"`
	Ascent1    string `json:"ascent1,omitempty"`
	Ascent2    string `json:"ascent2,omitempty"`
	Cap        string `json:"cap,omitempty"`
}

// whiteAscent2 is the fixed derived value when the effective ascent1 is white.
const whiteAscent2 = "#d6d6d6"

// darkenPct is the derivation factor for non-white ascent2 values.
const darkenPct = 0.15

// Recolor applies the manifest rules and caller colors to the named icon's
// template and returns the recolored SVG. The icon key must exist in both
// the template store and the manifest; a miss in either fails with a
// NotFoundError. Missing slot roles are skipped, never an error.
func Recolor(iconKey string, in ColorInput, store *icons.Store, m *manifest.Manifest) (string, error) {
	svg, err := store.Get(iconKey)
	if err != nil {
		return "", err
	}

	ic, ok := m.Icon(iconKey)
	if !ok {
		return "", tinterrors.NewNotFoundError("manifest entry", iconKey)
	}

	if slot, ok := ic.Slot(manifest.RoleBackground); ok {
		target := in.Background
		if target == "" && slot.ApplyDefaultIfAIMissing {
			target = slot.DefaultColor
		}
		if target != "" {
			svg = replaceFill(svg, slot.Literal(), target)
		}
	}

	a1Slot, hasA1 := ic.Slot(manifest.RoleAscent1)
	if hasA1 {
		target := in.Ascent1
		if target == "" {
			target = a1Slot.DefaultColor
		}
		svg = replaceFill(svg, a1Slot.Literal(), target)
	}

	if slot, ok := ic.Slot(manifest.RoleAscent2); ok {
		target := in.Ascent2
		if target == "" {
			effective := in.Ascent1
			if effective == "" {
				if hasA1 {
					effective = a1Slot.DefaultColor
				} else {
					effective = slot.DefaultColor
				}
			}
			target = DeriveAscent2(effective)
		}
		svg = replaceFill(svg, slot.Literal(), target)
	}

	if slot, ok := ic.Slot(manifest.RoleCap); ok {
		target := in.Cap
		if target == "" {
			target = slot.DefaultColor
		}
		svg = replaceFill(svg, slot.Literal(), target)
	}

	return svg, nil
}

// DeriveAscent2 computes the secondary body color from the effective
// ascent1: white maps to the fixed #d6d6d6, everything else darkens by 15%.
func DeriveAscent2(ascent1 string) string {
	a1 := color.Normalize(ascent1)
	if a1 == "#fff" || a1 == "#ffffff" {
		return whiteAscent2
	}
	return color.Darken(a1, darkenPct)
}

// replaceFill swaps every fill="old" occurrence for fill="new", matching
// the hex digits case-insensitively. A slot may legitimately cover several
// elements sharing one literal, so all occurrences change together. When
// old and new normalize to the same value the document is returned as is.
func replaceFill(svg, old, new string) string {
	if old == "" {
		return svg
	}

	oldNorm := color.Normalize(old)
	newNorm := color.Normalize(new)
	if oldNorm == newNorm {
		return svg
	}

	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(`fill="`+oldNorm+`"`))
	return re.ReplaceAllLiteralString(svg, `fill="`+newNorm+`"`)
}
