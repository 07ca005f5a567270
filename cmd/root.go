// Package cmd provides the root command and CLI setup for rsort.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rsort.dev/pkg/rsort/internal/adapter"
	"rsort.dev/pkg/rsort/internal/controller"
	"rsort.dev/pkg/rsort/internal/domain"
	m "rsort.dev/pkg/rsort/internal/model"
)

var rustFileAdapter adapter.RustFileAdapter
var fsAdapter adapter.SourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	rustFileAdapter = adapter.NewLocalRustFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(rustFileAdapter, fsAdapter)
}

const pathArgumentsHelp = `Accepts files and directories:
  - src/lib.rs     reorder a single file
  - src            recursively scan a directory for .rs files
  - src tests      scan multiple directories`

const rootLongDescription = `rsort rewrites Rust source files so that their top-level declarations
appear in a fixed canonical order: imports, type aliases, constants,
traits, types, impl blocks, functions, then test modules. Each
declaration keeps its original text, attributes and comments included.

` + pathArgumentsHelp

const runLongDescription = `Reorder the given files in place. Files whose declarations are already
in canonical order are left untouched.

` + pathArgumentsHelp

const listLongDescription = `List source files and their declaration counts per category.

` + pathArgumentsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsort",
		Short: "Canonical declaration ordering for Rust source files",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
