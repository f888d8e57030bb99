package color

// Names maps common medication and packaging color words to hex values.
// Used as a fallback when the extraction pipeline returns a color name
// instead of a hex string.
var Names = map[string]string{
	"white":       "#FFFFFF",
	"blue":        "#3B82F6",
	"red":         "#EF4444",
	"green":       "#10B981",
	"yellow":      "#F59E0B",
	"pink":        "#EC4899",
	"orange":      "#F97316",
	"purple":      "#8B5CF6",
	"brown":       "#A57C5A",
	"clear":       "#F8FAFC",
	"transparent": "#F8FAFC",
	"silver":      "#D1D5DB",
	"gold":        "#FCD34D",
	"cream":       "#FEF3C7",
	"beige":       "#F5F5DC",
	"maroon":      "#991B1B",
	"grey":        "#9CA3AF",
	"gray":        "#9CA3AF",
	"light blue":  "#93C5FD",
	"dark blue":   "#1E40AF",
	"light green": "#86EFAC",
	"dark green":  "#065F46",
}

// ReservedBlacks are outline and detail fills that must never be remapped.
// Manifest validation rejects slots targeting any of these literals.
var ReservedBlacks = map[string]struct{}{
	"#000000": {},
	"#111827": {},
	"#0b0b0b": {},
	"#0a0a0a": {},
}
