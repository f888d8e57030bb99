package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmakit/icontint/internal/color"
	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/raster"
	"github.com/pharmakit/icontint/internal/recolor"
	"github.com/pharmakit/icontint/pkg/diff"
)

type recolorOptions struct {
	Background string
	Ascent1    string
	Ascent2    string
	Cap        string
	OutPath    string
	PNGPath    string
	Size       int
	ShowDiff   bool
}

func newRecolorCmd(root *rootFlags) *cobra.Command {
	opts := recolorOptions{}

	cmd := &cobra.Command{
		Use:   "recolor <icon>",
		Short: "Recolor one icon and print or save the SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecolor(cmd, args[0], opts, root)
		},
	}

	cmd.Flags().StringVar(&opts.Background, "background", "", "Background color (name or hex)")
	cmd.Flags().StringVar(&opts.Ascent1, "ascent1", "", "Primary accent color (name or hex)")
	cmd.Flags().StringVar(&opts.Ascent2, "ascent2", "", "Secondary accent color (name or hex)")
	cmd.Flags().StringVar(&opts.Cap, "cap", "", "Cap color (name or hex)")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Write the SVG to a file instead of stdout")
	cmd.Flags().StringVar(&opts.PNGPath, "png", "", "Also rasterize to a PNG at this path")
	cmd.Flags().IntVar(&opts.Size, "size", raster.DefaultSize, "PNG output size in pixels")
	cmd.Flags().BoolVar(&opts.ShowDiff, "diff", false, "Print a diff against the template instead of the SVG")

	return cmd
}

func runRecolor(cmd *cobra.Command, iconKey string, opts recolorOptions, root *rootFlags) error {
	store := icons.New()
	m, err := loadManifest(root, store)
	if err != nil {
		return err
	}

	in, err := sanitizeColors(opts)
	if err != nil {
		return err
	}

	svg, err := recolor.Recolor(iconKey, in, store, m)
	if err != nil {
		return err
	}

	if opts.PNGPath != "" {
		if err := raster.ToPNG(svg, opts.PNGPath, opts.Size); err != nil {
			return err
		}
	}

	if opts.ShowDiff {
		template, err := store.Get(iconKey)
		if err != nil {
			return err
		}
		out := diff.Unified(template, svg, icons.CanonicalKey(iconKey)+" (template)", icons.CanonicalKey(iconKey)+" (recolored)")
		if out == "" {
			out = "no changes\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if opts.OutPath != "" {
		return os.WriteFile(opts.OutPath, []byte(svg), 0o644)
	}

	fmt.Fprintln(cmd.OutOrStdout(), svg)
	return nil
}

func sanitizeColors(opts recolorOptions) (recolor.ColorInput, error) {
	in := recolor.ColorInput{
		Background: opts.Background,
		Ascent1:    opts.Ascent1,
		Ascent2:    opts.Ascent2,
		Cap:        opts.Cap,
	}

	for _, f := range []*string{&in.Background, &in.Ascent1, &in.Ascent2, &in.Cap} {
		sanitized, err := color.Sanitize(*f)
		if err != nil {
			return recolor.ColorInput{}, err
		}
		*f = sanitized
	}

	return in, nil
}
