package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/service"
)

func newTaskCommand(deps commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task management",
	}
	cmd.AddCommand(
		newTaskAddCommand(deps),
		newTaskListCommand(deps),
		newTaskShowCommand(deps),
		newTaskEditCommand(deps),
		newTaskRemoveCommand(deps),
		newTaskClearCommand(deps),
	)
	return cmd
}

// TaskOutput is the task shape printed by task commands. Timestamps
// are RFC 3339 in UTC.
type TaskOutput struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func taskOutput(task *domain.Task) TaskOutput {
	return TaskOutput{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func newTaskAddCommand(deps commandDeps) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("task add does not accept positional arguments")
			}
			if strings.TrimSpace(title) == "" {
				return usageErrorf("task add requires --title")
			}

			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				task, err := svc.Create(ctx, title, description)
				if err != nil {
					return err
				}
				return printTaskOutput(deps, task)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	return cmd
}

func newTaskListCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("task ls does not accept positional arguments")
			}
			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				tasks, err := svc.List(ctx)
				if err != nil {
					return err
				}

				if deps.globals.JSON {
					out := make([]TaskOutput, 0, len(tasks))
					for i := range tasks {
						out = append(out, taskOutput(&tasks[i]))
					}
					return printJSON(deps.out, out)
				}

				for i := range tasks {
					if _, err := fmt.Fprintf(deps.out, "%d\t%s\t%s\n", tasks[i].ID, tasks[i].Title, tasks[i].Description); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newTaskShowCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("task show requires exactly one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				task, err := svc.GetByID(ctx, id)
				if err != nil {
					return err
				}
				return printTaskOutput(deps, task)
			})
		},
	}
}

func newTaskEditCommand(deps commandDeps) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("task edit requires exactly one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("description") {
				return usageErrorf("task edit requires --title or --description")
			}

			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				current, err := svc.GetByID(ctx, id)
				if err != nil {
					return err
				}

				newTitle := current.Title
				newDescription := current.Description
				if cmd.Flags().Changed("title") {
					newTitle = title
				}
				if cmd.Flags().Changed("description") {
					newDescription = description
				}

				task, err := svc.Update(ctx, id, newTitle, newDescription)
				if err != nil {
					return err
				}
				return printTaskOutput(deps, task)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Updated task title")
	cmd.Flags().StringVar(&description, "description", "", "Updated task description")
	return cmd
}

func newTaskRemoveCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("task rm requires exactly one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				if err := svc.Delete(ctx, id); err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]any{"deleted": id})
				}
				_, err := fmt.Fprintf(deps.out, "task removed: %d\n", id)
				return err
			})
		},
	}
}

func newTaskClearCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("task clear does not accept positional arguments")
			}
			return withTaskService(cmd.Context(), deps, func(ctx context.Context, svc *service.TaskService) error {
				n, err := svc.DeleteAll(ctx)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]any{"deleted": n})
				}
				_, err = fmt.Fprintf(deps.out, "removed %d tasks\n", n)
				return err
			})
		},
	}
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageErrorf("%q is not a valid task id", arg)
	}
	return id, nil
}

func printTaskOutput(deps commandDeps, task *domain.Task) error {
	if deps.globals.JSON {
		return printJSON(deps.out, taskOutput(task))
	}
	_, err := fmt.Fprintf(deps.out, "%d\t%s\t%s\n", task.ID, task.Title, task.Description)
	return err
}
