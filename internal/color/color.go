// Package color holds the hex utilities the recolor engine is built on:
// normalization, channel clamping, percentage darkening, and sanitization of
// free-form upstream color suggestions.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Normalize trims and lowercases s and expands 3-digit hex to 6 digits
// (#abc -> #aabbcc). Non-hex strings pass through trimmed and lowercased;
// callers that need strict hex use Sanitize instead.
func Normalize(s string) string {
	c := strings.ToLower(strings.TrimSpace(s))
	if !hexPattern.MatchString(c) {
		return c
	}
	if len(c) == 4 {
		r, g, b := c[1], c[2], c[3]
		return fmt.Sprintf("#%c%c%c%c%c%c", r, r, g, g, b, b)
	}
	return c
}

// IsHex reports whether s normalizes to a 3- or 6-digit hex color.
func IsHex(s string) bool {
	return hexPattern.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Darken multiplies each channel of a hex color by (1 - pct) and reassembles
// a lowercase 6-digit hex. Non-hex input is returned unchanged; the engine
// treats malformed colors as pass-through rather than an error.
func Darken(hex string, pct float64) string {
	h := Normalize(hex)
	if !hexPattern.MatchString(h) {
		return h
	}

	r, _ := strconv.ParseInt(h[1:3], 16, 0)
	g, _ := strconv.ParseInt(h[3:5], 16, 0)
	b, _ := strconv.ParseInt(h[5:7], 16, 0)

	r = int64(clamp(int(float64(r) * (1 - pct))))
	g = int64(clamp(int(float64(g) * (1 - pct))))
	b = int64(clamp(int(float64(b) * (1 - pct))))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Sanitize resolves a free-form upstream color suggestion to a normalized
// 6-digit hex value. Empty input and the "default" sentinel resolve to an
// empty string meaning "use the manifest default". Named colors are looked
// up in the dictionary. Anything else is an InvalidColorError; malformed
// suggestions must never reach the recolor engine.
func Sanitize(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" || t == "default" {
		return "", nil
	}
	if hexPattern.MatchString(t) {
		return Normalize(t), nil
	}
	if hex, ok := Names[t]; ok {
		return Normalize(hex), nil
	}
	return "", tinterrors.NewInvalidColorError(s)
}
