package batch

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/manifest"
	"github.com/pharmakit/icontint/internal/recolor"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

func testOptions() Options {
	return Options{
		Store:    icons.New(),
		Manifest: manifest.Default(),
	}
}

func TestProcessSequentialKeepsInputOrder(t *testing.T) {
	t.Parallel()

	requests := []Request{
		{Icon: "tablets"},
		{Icon: "syrup"},
		{Icon: "drops"},
	}

	results := Process(context.Background(), requests, testOptions())
	require.Len(t, results, 3)

	assert.Equal(t, "tablets", results[0].Icon)
	assert.Equal(t, "syrup", results[1].Icon)
	assert.Equal(t, "drops", results[2].Icon)
	for _, res := range results {
		require.NoError(t, res.Err)
		assert.Contains(t, res.SVG, "<svg")
		assert.Empty(t, res.PNGPath)
	}
}

func TestProcessParallelReturnsAllResults(t *testing.T) {
	t.Parallel()

	keys := icons.New().Keys()
	requests := make([]Request, 0, len(keys))
	for _, key := range keys {
		requests = append(requests, Request{Icon: key, Colors: recolor.ColorInput{Ascent1: "#112233"}})
	}

	opts := testOptions()
	opts.Parallel = true
	opts.MaxWorkers = 3

	results := Process(context.Background(), requests, opts)
	require.Len(t, results, len(keys))

	seen := make(map[string]bool, len(results))
	for _, res := range results {
		require.NoError(t, res.Err)
		seen[res.Icon] = true
	}
	for _, key := range keys {
		assert.True(t, seen[key], "no result for %s", key)
	}
}

func TestProcessIsolatesFailingTask(t *testing.T) {
	t.Parallel()

	requests := []Request{
		{Icon: "tablets"},
		{Icon: "gummies"},
		{Icon: "syrup"},
	}

	opts := testOptions()
	opts.Parallel = true

	results := Process(context.Background(), requests, opts)
	require.Len(t, results, 3)

	var failures, successes int
	for _, res := range results {
		if res.Err != nil {
			failures++
			assert.Equal(t, "gummies", res.Icon)

			var taskErr *tinterrors.TaskError
			require.ErrorAs(t, res.Err, &taskErr)
			var nf *tinterrors.NotFoundError
			require.ErrorAs(t, res.Err, &nf)
			continue
		}
		successes++
		assert.Contains(t, res.SVG, "<svg")
	}

	assert.Equal(t, 1, failures)
	assert.Equal(t, 2, successes)
}

func TestProcessWritesPNGsToOutDir(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	opts := testOptions()
	opts.OutDir = outDir
	opts.PNGSize = 48

	results := Process(context.Background(), []Request{{Icon: "tablets"}, {Icon: "drops"}}, opts)
	require.Len(t, results, 2)

	for _, res := range results {
		require.NoError(t, res.Err)
		require.NotEmpty(t, res.PNGPath)
		info, err := os.Stat(res.PNGPath)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestProcessEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Process(context.Background(), nil, testOptions()))
}

func TestProcessHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Process(ctx, []Request{{Icon: "tablets"}}, testOptions())
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}
