package main

import (
	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/pipeline"
)

var (
	configDefault bool
	configName    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the project through menuconfig",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newPipeline().Config(pipeline.ConfigOptions{
			Defconfig: configDefault,
			Profile:   configName,
		})
	},
}

func init() {
	configCmd.Flags().BoolVar(&configDefault, "default", false, "Generate the default configuration without opening the menu")
	configCmd.Flags().StringVar(&configName, "name", "c1", "Default configuration name (c1, c2, l3)")
	rootCmd.AddCommand(configCmd)
}
