package main

import (
	"github.com/spf13/cobra"

	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/logger"
	"github.com/pharmakit/icontint/internal/manifest"
)

type rootFlags struct {
	manifestPath string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "icontint",
		Short:         "icontint recolors medication icons from a slot manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.manifestPath, "manifest", "m", "", "Path to a slot manifest (defaults to the embedded one)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRecolorCmd(flags))
	cmd.AddCommand(newBatchCmd(flags))
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newIconsCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadManifest returns the embedded default when no path is set, and checks
// every substitution literal against the shipped templates either way.
func loadManifest(flags *rootFlags, store *icons.Store) (*manifest.Manifest, error) {
	var (
		m   *manifest.Manifest
		err error
	)
	if flags.manifestPath == "" {
		m = manifest.Default()
	} else if m, err = manifest.Load(flags.manifestPath); err != nil {
		return nil, err
	}

	if err := manifest.ValidateAgainst(m, store); err != nil {
		return nil, err
	}

	return m, nil
}

func newCmdLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}
