package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	commandValidationCode   = "MDX_COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "MDX_COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "MDX_COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "MDX_COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "MDX_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

// wrapExecuteError keeps errors the pipeline already categorised.
func wrapExecuteError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(commandExecuteFailed)
}
