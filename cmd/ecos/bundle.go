package main

import (
	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/pipeline"
)

var (
	bundleRelease bool
	bundleFormat  string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Pack the firmware images into a distributable archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newPipeline().Bundle(pipeline.BundleOptions{
			Release: bundleRelease,
			Format:  bundleFormat,
		})
	},
}

func init() {
	bundleCmd.Flags().BoolVar(&bundleRelease, "release", false, "Bundle the release images")
	bundleCmd.Flags().StringVar(&bundleFormat, "format", "tar.gz", "Archive format (tar.gz, tar.bz2)")
	rootCmd.AddCommand(bundleCmd)
}
