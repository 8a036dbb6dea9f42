package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Driver names accepted in an environment's driver field.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultEnvironment is used when no environment is selected.
const DefaultEnvironment = "development"

const (
	defaultLogLevel     = "info"
	defaultLogMaxSizeMB = 10
	defaultLogMaxFiles  = 5
)

var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrUnknownEnvironment = errors.New("unknown environment")
)

// Config is the application configuration, loaded from a TOML file.
// Each named environment carries its own storage settings, so test
// runs never touch the development database.
type Config struct {
	Environments map[string]Environment `toml:"environments"`
	Logging      LoggingConfig          `toml:"logging"`
}

// Environment describes the storage backing one named environment.
// Path applies to the sqlite driver, DSN to postgres.
type Environment struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
	DSN    string `toml:"dsn"`
}

type LoggingConfig struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	MaxSizeMB int    `toml:"max_size_mb"`
	MaxFiles  int    `toml:"max_files"`
}

// DefaultConfig returns the built-in configuration: sqlite databases
// under data/, one per environment.
func DefaultConfig() Config {
	return Config{
		Environments: map[string]Environment{
			"development": {
				Driver: DriverSQLite,
				Path:   filepath.Join("data", "development.db"),
			},
			"test": {
				Driver: DriverSQLite,
				Path:   filepath.Join("data", "test.db"),
			},
		},
		Logging: LoggingConfig{
			Level:     defaultLogLevel,
			File:      "",
			MaxSizeMB: defaultLogMaxSizeMB,
			MaxFiles:  defaultLogMaxFiles,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. An empty
// path returns the defaults unchanged; a path that cannot be read or
// parsed is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse TOML file %q: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Environment returns the named environment with its driver validated.
// A missing driver defaults to sqlite.
func (c Config) Environment(name string) (Environment, error) {
	env, ok := c.Environments[name]
	if !ok {
		return Environment{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}

	if env.Driver == "" {
		env.Driver = DriverSQLite
	}

	switch env.Driver {
	case DriverSQLite:
		if env.Path == "" {
			return Environment{}, fmt.Errorf("%w: environment %q: sqlite driver requires a path", ErrInvalidConfig, name)
		}
	case DriverPostgres:
		if env.DSN == "" {
			return Environment{}, fmt.Errorf("%w: environment %q: postgres driver requires a dsn", ErrInvalidConfig, name)
		}
	default:
		return Environment{}, fmt.Errorf("%w: environment %q: unknown driver %q", ErrInvalidConfig, name, env.Driver)
	}

	return env, nil
}
