package applier

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// RunMode decides whether the address-setting command is executed or only reported.
type RunMode int

const (
	DryRun RunMode = iota
	ActualRun
)

func (m RunMode) String() string {
	switch m {
	case DryRun:
		return "dry-run"
	case ActualRun:
		return "actual-run"
	default:
		return fmt.Sprintf("RunMode(%d)", int(m))
	}
}

// SubprocessFailedMessage is reported when the command exits with a non-zero status.
const SubprocessFailedMessage = "the subprocess setting the MAC address failed"

var errEmptyCommand = errors.New("empty command")

// ApplyError is a failed attempt to set an address. The rotation loop counts these
// towards its tolerance.
type ApplyError struct {
	Command  []string
	ExitCode int
	Err      error
}

func (e *ApplyError) Error() string {
	return e.Err.Error()
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Applier runs address-setting commands in a fixed RunMode.
type Applier struct {
	mode   RunMode
	runner Runner
	logger *zap.Logger
}

func New(mode RunMode, runner Runner, logger *zap.Logger) *Applier {
	return &Applier{
		mode:   mode,
		runner: runner,
		logger: logger,
	}
}

func (a *Applier) Mode() RunMode {
	return a.mode
}

// Apply executes args, or logs them in DryRun mode. A nil error means the address was set.
func (a *Applier) Apply(args []string) error {
	if len(args) == 0 {
		return &ApplyError{Command: args, ExitCode: -1, Err: errEmptyCommand}
	}

	if a.mode == DryRun {
		a.logger.Info(fmt.Sprintf("Would run `%s`", strings.Join(args, " ")))
		return nil
	}

	a.logger.Debug("Running command", zap.Strings("command", args))
	code, err := a.runner.Run(args[0], args[1:]...)
	if err != nil {
		return &ApplyError{Command: args, ExitCode: -1, Err: err}
	}
	if code != 0 {
		return &ApplyError{Command: args, ExitCode: code, Err: errors.New(SubprocessFailedMessage)}
	}
	return nil
}
