package main

import (
	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/pipeline"
)

var (
	flashSafe    bool
	flashBuild   bool
	flashRelease bool
	flashVerify  bool
	flashPath    string
	flashFile    string
)

var flashCmd = &cobra.Command{
	Use:   "flash [-- <cargo args>]",
	Short: "Copy the firmware image onto the flash target",
	RunE: func(cmd *cobra.Command, args []string) error {
		passthrough, err := passthroughArgs(cmd, args)
		if err != nil {
			return err
		}
		return newPipeline().Flash(pipeline.FlashOptions{
			Safe:      flashSafe,
			Build:     flashBuild,
			Release:   flashRelease,
			Verify:    flashVerify,
			Path:      flashPath,
			File:      flashFile,
			ExtraArgs: passthrough,
		})
	},
}

func init() {
	flashCmd.Flags().BoolVar(&flashSafe, "safe", false, "Never rebuild, fail when no image exists")
	flashCmd.Flags().BoolVar(&flashBuild, "build", false, "Rebuild before flashing")
	flashCmd.Flags().BoolVar(&flashRelease, "release", false, "Flash the release image (forces a rebuild)")
	flashCmd.Flags().BoolVar(&flashVerify, "verify", false, "Verify the copy against the source checksum")
	flashCmd.Flags().StringVar(&flashPath, "path", "", "Flash target path (must be absolute)")
	flashCmd.Flags().StringVar(&flashFile, "file", "", "Flash a specific .bin file instead of the build output")
	rootCmd.AddCommand(flashCmd)
}
