package main

import (
	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/internal/scaffold"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/logging"
)

var (
	initTemplate string
	initForce    bool
	initFlash    string
)

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Create a new ECOS project from a template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := scaffold.Options{
			Template: initTemplate,
			Force:    initForce,
			Flash:    initFlash,
			FlashSet: cmd.Flags().Changed("flash"),
		}
		if len(args) > 0 {
			opts.Path = args[0]
		}
		logger := logging.NewLogger("ecos", logging.GetLogLevel(), nil)
		return scaffold.Run(opts, logger)
	},
}

func init() {
	initCmd.Flags().StringVar(&initTemplate, "template", "", "Template name")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Force overwrite existing files")
	initCmd.Flags().StringVar(&initFlash, "flash", "", `Where firmware will be copied when flashing (e.g. /mnt/e or E:\)`)
	rootCmd.AddCommand(initCmd)
}
