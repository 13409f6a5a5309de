package applier

import (
	"errors"
	"os"
	"os/exec"
)

// Runner abstracts process execution so rotation can be exercised without root.
// A non-nil error means the process could not be launched or waited on; the exit code is
// only meaningful when err is nil.
type Runner interface {
	Run(name string, args ...string) (exitCode int, err error)
}

// ExecRunner spawns commands with the parent's standard streams and waits for them to exit.
type ExecRunner struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *ExecRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}
