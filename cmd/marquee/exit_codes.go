package main

import (
	stderrors "errors"

	"github.com/odvcencio/marquee/pkg/errors"
)

const (
	exitFailure = 1
	exitConfig  = 2
	exitBackend = 3
)

type exitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitFailure
	}
	return e.code
}

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

// exitCodeForError maps an error to a process exit status. Explicit exit
// codes win; otherwise the error code decides.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if stderrors.As(err, &coder) {
		return coder.ExitCode()
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigLoad, errors.ErrCodeConfigParse, errors.ErrCodeConfigInvalid:
		return exitConfig
	case errors.ErrCodeBackendInit:
		return exitBackend
	}
	return exitFailure
}
