package meson

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/execabs"
)

// Command is one external invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner starts a command and waits for it to exit.
type Runner interface {
	Run(cmd *Command) error
}

// ExecRunner runs commands as child processes. Output is streamed to Stdout
// and Stderr (os.Stdout and os.Stderr when nil); stdin is not connected.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts cmd and blocks until it exits. The returned error is a
// *LaunchError if the process could not be started, or an *ExitError if it
// exited with a nonzero status.
func (r *ExecRunner) Run(cmd *Command) error {
	c := execabs.Command(cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = r.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = r.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if err := c.Start(); err != nil {
		return &LaunchError{Name: cmd.Name, Err: err}
	}
	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Name: cmd.Name, Code: exitErr.ExitCode(), Err: err}
		}
		return &LaunchError{Name: cmd.Name, Err: err}
	}
	return nil
}

// LaunchError reports a command that could not be started.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot run command %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports a command that ran and exited unsuccessfully.
type ExitError struct {
	Name string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Name, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }
