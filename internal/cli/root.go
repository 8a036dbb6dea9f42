package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msomdec/tasklist/internal/config"
)

// BuildInfo carries the version identifiers stamped in at build time.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// NewRootCommand assembles the tasklist command tree. All command
// output goes to out; errors are returned from Execute rather than
// printed, so main can map them to exit codes.
func NewRootCommand(out io.Writer, build BuildInfo) *cobra.Command {
	globals := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "Manage the task list database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().StringVar(&globals.ConfigPath, "config", "", "Path to a TOML config file")
	cmd.PersistentFlags().StringVar(&globals.Env, "env", config.DefaultEnvironment, "Named environment to operate on")
	cmd.PersistentFlags().BoolVar(&globals.JSON, "json", false, "Print results as JSON")

	deps := commandDeps{out: out, globals: globals, build: build}

	cmd.AddCommand(newVersionCommand(deps))
	cmd.AddCommand(newMigrateCommand(deps))
	cmd.AddCommand(newSeedCommand(deps))
	cmd.AddCommand(newTaskCommand(deps))
	cmd.InitDefaultCompletionCmd()
	return cmd
}
