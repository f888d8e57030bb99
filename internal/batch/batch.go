// Package batch fans independent recolor requests out over a bounded worker
// pool and optionally rasterizes each result to disk. Tasks share nothing
// mutable: templates and the manifest are read-only, and every task writes
// to a distinct request-derived file path.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/logger"
	"github.com/pharmakit/icontint/internal/manifest"
	"github.com/pharmakit/icontint/internal/raster"
	"github.com/pharmakit/icontint/internal/recolor"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// defaultWorkers bounds the pool when the caller does not.
const defaultWorkers = 4

// Request is one unit of recoloring work.
type Request struct {
	Icon   string             `json:"icon_key" validate:"required"`
	Colors recolor.ColorInput `json:"colors"`
}

// Result is the outcome for one request. A failed task carries Err and, if
// only rasterization failed, still carries the recolored SVG so callers can
// degrade.
type Result struct {
	Icon    string `json:"icon"`
	SVG     string `json:"svg,omitempty"`
	PNGPath string `json:"png_path,omitempty"`
	Err     error  `json:"-"`
}

// Options configures a batch run.
type Options struct {
	Store    *icons.Store
	Manifest *manifest.Manifest
	// OutDir enables rasterization; each result is written there as
	// <icon>_<size>.png. Empty means SVG-only.
	OutDir     string
	PNGSize    int
	Parallel   bool
	MaxWorkers int
	Logger     *logger.Logger
}

// Process runs all requests and returns one result per request. With
// concurrency enabled and more than one request, results arrive in
// completion order; otherwise they follow input order. A single failing
// task never aborts its siblings, and no retry or cancellation logic runs
// beyond honoring ctx at task start.
func Process(ctx context.Context, requests []Request, opts Options) []Result {
	if len(requests) == 0 {
		return nil
	}

	size := opts.PNGSize
	if size <= 0 {
		size = raster.DefaultSize
	}

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			results := make([]Result, len(requests))
			for i, req := range requests {
				results[i] = Result{Icon: req.Icon, Err: tinterrors.NewTaskError(req.Icon, err)}
			}
			return results
		}
	}

	if !opts.Parallel || len(requests) == 1 {
		results := make([]Result, 0, len(requests))
		for _, req := range requests {
			results = append(results, processOne(ctx, req, size, opts))
		}
		return results
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = defaultWorkers
	}

	pool := make(chan struct{}, workers)
	out := make(chan Result, len(requests))
	var wg sync.WaitGroup

	for _, req := range requests {
		wg.Add(1)
		go func(req Request) {
			defer wg.Done()

			pool <- struct{}{}
			defer func() { <-pool }()

			out <- processOne(ctx, req, size, opts)
		}(req)
	}

	wg.Wait()
	close(out)

	results := make([]Result, 0, len(requests))
	for res := range out {
		results = append(results, res)
	}
	return results
}

func processOne(ctx context.Context, req Request, size int, opts Options) Result {
	log := opts.Logger.WithFields(map[string]any{"icon": req.Icon})

	if err := ctx.Err(); err != nil {
		return Result{Icon: req.Icon, Err: tinterrors.NewTaskError(req.Icon, err)}
	}

	svg, err := recolor.Recolor(req.Icon, req.Colors, opts.Store, opts.Manifest)
	if err != nil {
		log.Error(err, "recolor failed")
		return Result{Icon: req.Icon, Err: tinterrors.NewTaskError(req.Icon, err)}
	}

	res := Result{Icon: req.Icon, SVG: svg}
	if opts.OutDir == "" {
		return res
	}

	outPath := filepath.Join(opts.OutDir, fmt.Sprintf("%s_%d.png", icons.CanonicalKey(req.Icon), size))
	if err := raster.ToPNG(svg, outPath, size); err != nil {
		log.Error(err, "rasterization failed")
		res.Err = tinterrors.NewTaskError(req.Icon, err)
		return res
	}

	res.PNGPath = outPath
	log.Debug("request complete")
	return res
}
