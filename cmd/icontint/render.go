package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pharmakit/icontint/internal/raster"
)

func newRenderCmd() *cobra.Command {
	var (
		outPath string
		size    int
	)

	cmd := &cobra.Command{
		Use:   "render <svg-file>",
		Short: "Rasterize an SVG file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = strings.TrimSuffix(args[0], ".svg") + ".png"
			}

			if err := raster.ToPNG(string(data), outPath, size); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "PNG output path (defaults to the input name with .png)")
	cmd.Flags().IntVar(&size, "size", raster.DefaultSize, "Output size in pixels")

	return cmd
}
