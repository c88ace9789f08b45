package shell

import (
	"errors"
	"os"
	"os/exec"
)

// Process is a started pipeline stage.
type Process struct {
	Command Command

	cmd *exec.Cmd
	// stdout is the read end of the pipe feeding the next stage, nil if the
	// stage writes to the shell's stdout or the pipe was handed on.
	stdout *os.File
}

// Pid returns the operating system's process ID.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// takeStdout hands ownership of the output pipe to the caller.
func (p *Process) takeStdout() *os.File {
	out := p.stdout
	p.stdout = nil
	return out
}

// closeStdout drops the output pipe if it wasn't handed on.
func (p *Process) closeStdout() {
	if p == nil || p.stdout == nil {
		return
	}
	p.stdout.Close()
	p.stdout = nil
}

// Wait waits for the process to exit and returns its exit code. Exiting with
// a non-zero status is not an error.
func (p *Process) Wait() (int, error) {
	err := p.cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, err
	}
}
