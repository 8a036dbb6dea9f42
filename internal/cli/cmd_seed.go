package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msomdec/tasklist/internal/service"
)

func newSeedCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the task list to the default entries",
		Long: "Seed removes every existing task and inserts the default entries.\n" +
			"Run migrate first; seed expects the schema to be in place.",
		Example: "  tasklist migrate && tasklist seed\n" +
			"  tasklist --env test seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("seed does not accept positional arguments")
			}
			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				n, err := svc.Seed(ctx)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]any{
						"seeded":      n,
						"environment": deps.globals.Env,
					})
				}
				_, err = fmt.Fprintf(deps.out, "seeded %d tasks (%s)\n", n, deps.globals.Env)
				return err
			})
		},
	}
}
