package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rsort.dev/pkg/rsort/internal/domain"
)

var runParallelFlag int
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Reorder Rust files in place",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)

			results, err := workflow.Reorder(cmd.Context(), domain.ReorderArgs{
				Paths:   paths,
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(runParallelConfigKey),
				DryRun:  runDryRunFlag,
			})
			if err != nil {
				return err
			}

			return ui.DisplayReorderResults(cmd.Context(), results, runDryRunFlag)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for reordering files")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().BoolVarP(&runDryRunFlag, runDryRunFlagName, "n", false, "report files that would change without writing them")
}
