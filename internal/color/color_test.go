package color

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"short hex expands", "#ABC", "#aabbcc"},
		{"mixed case lowers", "#aAbBcC", "#aabbcc"},
		{"already normal", "#d6d6d6", "#d6d6d6"},
		{"trims whitespace", "  #FFF  ", "#ffffff"},
		{"non hex passes through", "rgb(1,2,3)", "rgb(1,2,3)"},
		{"missing hash passes through", "aabbcc", "aabbcc"},
		{"wrong length passes through", "#abcd", "#abcd"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestDarkenMonotonicity(t *testing.T) {
	t.Parallel()

	inputs := []string{"#ffffff", "#112233", "#e37b35", "#0a0a0a", "#ABC"}
	for _, in := range inputs {
		norm := Normalize(in)
		out := Darken(in, 0.15)
		require.True(t, IsHex(out), "darken of valid hex must stay hex: %s", out)

		for i := 1; i < 7; i += 2 {
			before, err := strconv.ParseInt(norm[i:i+2], 16, 0)
			require.NoError(t, err)
			after, err := strconv.ParseInt(out[i:i+2], 16, 0)
			require.NoError(t, err)
			assert.LessOrEqual(t, after, before, "channel %d brightened for %s", i/2, in)
		}
	}
}

func TestDarkenZeroPercentIsIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#aabbcc", Darken("#AaBbCc", 0))
	assert.Equal(t, "#ffffff", Darken("#fff", 0))
}

func TestDarkenKnownValues(t *testing.T) {
	t.Parallel()

	// 0x11*0.85 truncates to 14, 0x22*0.85 to 28, 0x33*0.85 to 43.
	assert.Equal(t, "#0e1c2b", Darken("#112233", 0.15))
	assert.Equal(t, "#d8d8d8", Darken("#ffffff", 0.15))
	assert.Equal(t, "#000000", Darken("#112233", 1))
}

func TestDarkenPassesThroughInvalidInput(t *testing.T) {
	t.Parallel()

	// The engine is deliberately lenient here; malformed colors are the
	// sanitizer's problem, not the math's.
	assert.Equal(t, "rebeccapurple", Darken("rebeccapurple", 0.15))
	assert.Equal(t, "#abcd", Darken("#abcd", 0.5))
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"hex passes", "#112233", "#112233", false},
		{"short hex expands", "#ABC", "#aabbcc", false},
		{"named color", "white", "#ffffff", false},
		{"named two words", "light blue", "#93c5fd", false},
		{"empty means default", "", "", false},
		{"sentinel means default", "default", "", false},
		{"sentinel case insensitive", " Default ", "", false},
		{"unknown name fails", "bluish", "", true},
		{"rgb fails", "rgb(0,0,0)", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Sanitize(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				var ic *tinterrors.InvalidColorError
				require.ErrorAs(t, err, &ic)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNamesResolveToValidHex(t *testing.T) {
	t.Parallel()

	for name, hex := range Names {
		assert.True(t, IsHex(hex), "dictionary entry %q has invalid hex %q", name, hex)
	}
}
