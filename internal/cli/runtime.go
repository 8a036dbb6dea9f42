package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/msomdec/tasklist/internal/config"
	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/log"
	"github.com/msomdec/tasklist/internal/repository/postgres"
	"github.com/msomdec/tasklist/internal/repository/sqlite"
	"github.com/msomdec/tasklist/internal/service"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Env        string
	JSON       bool
}

type commandDeps struct {
	out     io.Writer
	globals *GlobalOptions
	build   BuildInfo
}

// withDatabase loads the configuration, opens the storage backend for
// the selected environment and hands it to fn. The database is closed
// when fn returns, and any error comes back with its exit code mapped.
func withDatabase(ctx context.Context, deps commandDeps, fn func(context.Context, domain.Database) error) error {
	configPath := ""
	envName := config.DefaultEnvironment
	if deps.globals != nil {
		configPath = strings.TrimSpace(deps.globals.ConfigPath)
		if name := strings.TrimSpace(deps.globals.Env); name != "" {
			envName = name
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return mapCommandError(fmt.Errorf("load config: %w", err))
	}

	if _, err := log.Setup(cfg.Logging); err != nil {
		return mapCommandError(fmt.Errorf("setup logging: %w", err))
	}

	env, err := cfg.Environment(envName)
	if err != nil {
		return mapCommandError(err)
	}

	db, err := openDatabase(env)
	if err != nil {
		return mapCommandError(fmt.Errorf("open %s database: %w", envName, err))
	}
	defer db.Close()

	return mapCommandError(fn(ctx, db))
}

// withTaskService is withDatabase with the task service already wired.
func withTaskService(ctx context.Context, deps commandDeps, fn func(context.Context, *service.TaskService) error) error {
	return withDatabase(ctx, deps, func(ctx context.Context, db domain.Database) error {
		return fn(ctx, service.NewTaskService(db.Tasks()))
	})
}

func openDatabase(env config.Environment) (domain.Database, error) {
	switch env.Driver {
	case config.DriverSQLite:
		return sqlite.New(env.Path)
	case config.DriverPostgres:
		return postgres.New(env.DSN)
	default:
		return nil, fmt.Errorf("unknown driver %q", env.Driver)
	}
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
