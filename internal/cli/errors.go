package cli

import (
	"errors"
	"fmt"

	"github.com/msomdec/tasklist/internal/config"
	"github.com/msomdec/tasklist/internal/domain"
)

const (
	ExitCodeSuccess      = 0
	ExitCodeGeneric      = 1
	ExitCodeUsage        = 2
	ExitCodeNotFound     = 3
	ExitCodeInvalidInput = 4
	ExitCodeConfig       = 5
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ExitError) ExitCode() int {
	if e == nil {
		return ExitCodeGeneric
	}
	return e.Code
}

func asExitError(code int, err error) error {
	if err == nil {
		return nil
	}
	var withExit interface{ ExitCode() int }
	if errors.As(err, &withExit) {
		return err
	}
	return &ExitError{Code: code, Err: err}
}

// mapCommandError attaches an exit code to domain and config errors so
// scripts can tell a missing task from a broken config.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	var withExit interface{ ExitCode() int }
	if errors.As(err, &withExit) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return asExitError(ExitCodeNotFound, err)
	case errors.Is(err, domain.ErrInvalidInput):
		return asExitError(ExitCodeInvalidInput, err)
	case errors.Is(err, config.ErrUnknownEnvironment),
		errors.Is(err, config.ErrInvalidConfig):
		return asExitError(ExitCodeConfig, err)
	}

	return asExitError(ExitCodeGeneric, err)
}

func usageErrorf(format string, args ...any) error {
	return &ExitError{
		Code: ExitCodeUsage,
		Err:  fmt.Errorf(format, args...),
	}
}
