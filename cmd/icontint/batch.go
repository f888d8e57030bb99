package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pharmakit/icontint/internal/batch"
	"github.com/pharmakit/icontint/internal/color"
	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/raster"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

type batchOptions struct {
	RequestsPath string
	OutDir       string
	Size         int
	MaxWorkers   int
	Sequential   bool
	WritePNG     bool
}

func newBatchCmd(root *rootFlags) *cobra.Command {
	opts := batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Recolor many icons from a JSON request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, root)
		},
	}

	cmd.Flags().StringVarP(&opts.RequestsPath, "requests", "r", "", "Path to a JSON array of recolor requests")
	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "d", "out", "Directory for generated files")
	cmd.Flags().IntVar(&opts.Size, "size", raster.DefaultSize, "PNG output size in pixels")
	cmd.Flags().IntVar(&opts.MaxWorkers, "max-workers", 0, "Worker cap for parallel processing (0 = default)")
	cmd.Flags().BoolVar(&opts.Sequential, "sequential", false, "Process requests one at a time in input order")
	cmd.Flags().BoolVar(&opts.WritePNG, "png", false, "Also rasterize each result to PNG")
	cmd.MarkFlagRequired("requests") //nolint:errcheck

	return cmd
}

func runBatch(cmd *cobra.Command, opts batchOptions, root *rootFlags) error {
	data, err := os.ReadFile(opts.RequestsPath)
	if err != nil {
		return err
	}

	var requests []batch.Request
	if err := json.Unmarshal(data, &requests); err != nil {
		return tinterrors.NewParseError(opts.RequestsPath, 0, err)
	}

	for i := range requests {
		for _, f := range []*string{
			&requests[i].Colors.Background,
			&requests[i].Colors.Ascent1,
			&requests[i].Colors.Ascent2,
			&requests[i].Colors.Cap,
		} {
			sanitized, err := color.Sanitize(*f)
			if err != nil {
				return err
			}
			*f = sanitized
		}
	}

	store := icons.New()
	m, err := loadManifest(root, store)
	if err != nil {
		return err
	}
	log, err := newCmdLogger(root)
	if err != nil {
		return err
	}

	batchOpts := batch.Options{
		Store:      store,
		Manifest:   m,
		Parallel:   !opts.Sequential,
		MaxWorkers: opts.MaxWorkers,
		Logger:     log,
	}
	if opts.WritePNG {
		batchOpts.OutDir = opts.OutDir
		batchOpts.PNGSize = opts.Size
	}

	results := batch.Process(cmd.Context(), requests, batchOpts)

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return err
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Icon, res.Err)
			continue
		}

		svgPath := filepath.Join(opts.OutDir, res.Icon+".svg")
		if err := os.WriteFile(svgPath, []byte(res.SVG), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Icon, svgPath)
		if res.PNGPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Icon, res.PNGPath)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d requests failed", failures, len(results))
	}

	return nil
}
