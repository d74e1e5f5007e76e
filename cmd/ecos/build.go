package main

import (
	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/pipeline"
)

var (
	buildRelease     bool
	buildNoMemReport bool
)

var buildCmd = &cobra.Command{
	Use:   "build [-- <cargo args>]",
	Short: "Build the firmware and generate flashable images",
	RunE: func(cmd *cobra.Command, args []string) error {
		passthrough, err := passthroughArgs(cmd, args)
		if err != nil {
			return err
		}
		return newPipeline().Build(pipeline.BuildOptions{
			Release:       buildRelease,
			SkipMemReport: buildNoMemReport,
			ExtraArgs:     passthrough,
		})
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "Build with the release profile")
	buildCmd.Flags().BoolVar(&buildNoMemReport, "no-mem-report", false, "Skip the memory usage report")
	rootCmd.AddCommand(buildCmd)
}
