package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func newTestHeuristic() *Heuristic {
	return &Heuristic{Now: fixedClock}
}

func TestHeuristicShorthandTablet(t *testing.T) {
	t.Parallel()

	ex, err := newTestHeuristic().Extract(context.Background(), Input{Text: "Tab Dolo 650 1 OD x 5d"})
	require.NoError(t, err)
	require.Len(t, ex.Medications, 1)

	med := ex.Medications[0]
	assert.Equal(t, "Dolo", med.MedicineName)
	assert.Equal(t, "tablet", med.Form)
	assert.Equal(t, "650mg", med.Dosage)
	assert.Equal(t, 1, med.Frequency)
	assert.Equal(t, []string{"08:00"}, med.Times)
	assert.Equal(t, 5, med.CourseDurationDays)
	assert.Equal(t, "2026-03-14", med.StartDate)
	assert.Equal(t, "White Tablet", med.DisplayName)
}

func TestHeuristicShorthandCapsule(t *testing.T) {
	t.Parallel()

	ex, err := newTestHeuristic().Extract(context.Background(), Input{Text: "Cap Amoxil 500 BD x 7d"})
	require.NoError(t, err)
	require.Len(t, ex.Medications, 1)

	med := ex.Medications[0]
	assert.Equal(t, "Amoxil", med.MedicineName)
	assert.Equal(t, "capsule", med.Form)
	assert.Equal(t, 2, med.Frequency)
	assert.Equal(t, []string{"08:00", "20:00"}, med.Times)
	assert.Equal(t, 7, med.CourseDurationDays)
}

func TestHeuristicSpelledOutEntry(t *testing.T) {
	t.Parallel()

	ex, err := newTestHeuristic().Extract(context.Background(), Input{
		Text: "Dolo 650 - 1 tablet - 3 times daily - 5 days",
	})
	require.NoError(t, err)
	require.Len(t, ex.Medications, 1)

	med := ex.Medications[0]
	assert.Equal(t, "Dolo", med.MedicineName)
	assert.Equal(t, "tablet", med.Form)
	assert.Equal(t, "650mg", med.Dosage)
	assert.Equal(t, 3, med.Frequency)
	assert.Equal(t, []string{"08:00", "14:00", "20:00"}, med.Times)
	assert.Equal(t, 5, med.CourseDurationDays)
}

func TestHeuristicDetectsColorWords(t *testing.T) {
	t.Parallel()

	ex, err := newTestHeuristic().Extract(context.Background(), Input{
		Text: "Syr Cetirizine 5ml TDS x 3d light blue syrup",
	})
	require.NoError(t, err)
	require.Len(t, ex.Medications, 1)

	med := ex.Medications[0]
	assert.Equal(t, "syrup", med.Form)
	assert.Equal(t, "light blue", med.Color, "longest matching color name wins")
	assert.Equal(t, "5ml", med.Dosage)
	assert.Equal(t, 3, med.Frequency)
}

func TestHeuristicMultipleLines(t *testing.T) {
	t.Parallel()

	ex, err := newTestHeuristic().Extract(context.Background(), Input{
		Text: "Tab Dolo 650 1 OD x 5d\n\nCap Amoxil 500 BD x 7d",
	})
	require.NoError(t, err)
	assert.Len(t, ex.Medications, 2)
	assert.Contains(t, ex.ProcessingNotes, "heuristics")
}

func TestHeuristicUsesVoiceTranscription(t *testing.T) {
	t.Parallel()

	ex, err := newTestHeuristic().Extract(context.Background(), Input{
		VoiceTranscription: "Amoxicillin 500mg capsule twice daily 7 days",
	})
	require.NoError(t, err)
	require.Len(t, ex.Medications, 1)
	assert.Equal(t, "Amoxicillin", ex.Medications[0].MedicineName)
	assert.Equal(t, 2, ex.Medications[0].Frequency)
}

func TestHeuristicRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := newTestHeuristic().Extract(context.Background(), Input{})
	require.Error(t, err)

	var validationErr *tinterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestHeuristicCannotReadImages(t *testing.T) {
	t.Parallel()

	_, err := newTestHeuristic().Extract(context.Background(), Input{ImageBase64: "aGkh"})
	require.Error(t, err)

	var capErr *tinterrors.CapabilityError
	require.ErrorAs(t, err, &capErr)
}

func TestInputEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Input{}.Empty())
	assert.False(t, Input{Text: "x"}.Empty())
	assert.False(t, Input{ImageBase64: "x"}.Empty())
	assert.False(t, Input{VoiceTranscription: "x"}.Empty())
}
