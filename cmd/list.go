package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rsort.dev/pkg/rsort/internal/controller"
	"rsort.dev/pkg/rsort/internal/domain"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and declaration counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)

			stats, err := workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				Paths:   paths,
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
			if err != nil {
				return err
			}

			return ui.DisplayEstimation(cmd.Context(), stats, controller.EstimationFormat(listFormatFlag))
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, listFormatFlagName, "f", defaultListFormat, "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
