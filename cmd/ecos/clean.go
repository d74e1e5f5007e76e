package main

import (
	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/pipeline"
)

var cleanAll bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build outputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newPipeline().Clean(pipeline.CleanOptions{All: cleanAll})
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Also remove configuration state and generated headers")
	rootCmd.AddCommand(cleanCmd)
}
