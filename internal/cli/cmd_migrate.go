package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msomdec/tasklist/internal/domain"
)

func newMigrateCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Example: "  tasklist migrate\n" +
			"  tasklist --env test migrate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("migrate does not accept positional arguments")
			}
			return withDatabase(cmd.Context(), deps, func(ctx context.Context, db domain.Database) error {
				if err := db.Migrate(ctx); err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]any{
						"migrated":    true,
						"environment": deps.globals.Env,
					})
				}
				_, err := fmt.Fprintf(deps.out, "migrations applied (%s)\n", deps.globals.Env)
				return err
			})
		},
	}
}
