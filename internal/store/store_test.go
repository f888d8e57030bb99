package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "medications.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleMedication() *Medication {
	return &Medication{
		MedicineName:       "Paracetamol",
		DisplayName:        "White Tablet",
		Form:               "tablet",
		IconKey:            "tablets",
		MedicationColor:    "#ffffff",
		BackgroundColor:    "#b8b8b8",
		Dosage:             "650mg",
		Frequency:          3,
		Times:              []string{"08:00", "14:00", "20:00"},
		CourseDurationDays: 5,
		StartDate:          "2026-03-14",
	}
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	med := sampleMedication()

	require.NoError(t, s.Insert(context.Background(), med))
	assert.NotEmpty(t, med.ID)
	assert.False(t, med.CreatedAt.IsZero())
}

func TestInsertAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	med := sampleMedication()
	require.NoError(t, s.Insert(context.Background(), med))

	got, err := s.Get(context.Background(), med.ID)
	require.NoError(t, err)

	assert.Equal(t, med.MedicineName, got.MedicineName)
	assert.Equal(t, med.IconKey, got.IconKey)
	assert.Equal(t, med.Times, got.Times)
	assert.Equal(t, med.Frequency, got.Frequency)
	assert.Equal(t, med.StartDate, got.StartDate)
	assert.Equal(t, med.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
}

func TestGetUnknownID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	_, err := s.Get(context.Background(), "does-not-exist")
	require.Error(t, err)

	var nf *tinterrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestListReturnsAllRecords(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	first := sampleMedication()
	require.NoError(t, s.Insert(ctx, first))

	second := sampleMedication()
	second.MedicineName = "Amoxicillin"
	second.IconKey = "capsules"
	require.NoError(t, s.Insert(ctx, second))

	meds, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, meds, 2)
}

func TestDeleteRemovesRecord(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	med := sampleMedication()
	require.NoError(t, s.Insert(ctx, med))
	require.NoError(t, s.Delete(ctx, med.ID))

	_, err := s.Get(ctx, med.ID)
	require.Error(t, err)

	err = s.Delete(ctx, med.ID)
	var nf *tinterrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open("   ")
	require.Error(t, err)
}
