package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
)

// Exit statuses for lines that end without a terminal process.
const (
	StatusFailure   = 1
	StatusCannotRun = 126
	StatusNotFound  = 127
)

// Result describes how a pipeline walk ended.
type Result struct {
	// Terminal is the last started process, the caller must Wait on it.
	Terminal *Process
	// Spawned counts the processes that were started.
	Spawned int
	// Exit is set when the exit builtin ran.
	Exit bool
	// Aborted is set when a failed cd skipped the rest of the pipeline.
	Aborted bool
	// Status is the exit status of the line when there is no Terminal.
	Status int
}

// Executor starts the stages of a pipeline.
type Executor struct {
	IO     IO
	Logger *log.Logger

	// Errorf reports recoverable errors to the user, defaults to writing a
	// line to IO.Stderr.
	Errorf func(format string, a ...interface{})

	// stdin is the read end of the pipe fed from IO.Stdin when that isn't a
	// file, shared by every stage that reads the shell's input.
	stdin *os.File
}

func (e *Executor) logf(format string, a ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, a...)
	}
}

func (e *Executor) errorf(format string, a ...interface{}) {
	if e.Errorf != nil {
		e.Errorf(format, a...)
		return
	}
	fmt.Fprintf(e.IO.orDiscard().Stderr, format+"\n", a...)
}

// Run starts each stage of the pipeline left to right, connecting the stdout
// of one stage to the stdin of the next.
//
// exit stops the walk without waiting on stages already started. A failed cd
// skips the remaining stages while a command that fails to start is reported
// and the walk continues with the next stage reading the shell's stdin.
//
// Stages that aren't terminal are reaped in the background and their exit
// status is discarded.
func (e *Executor) Run(ctx context.Context, pipeline Pipeline, wd *WorkingDir) *Result {
	result := &Result{}

	// previous is the only stage not yet handed on or returned.
	var previous *Process

	for i, command := range pipeline {
		last := i == len(pipeline)-1

		if builtin, ok := lookupBuiltin(command.Name); ok {
			switch builtin(e, wd, command.Args) {
			case builtinExit:
				// The earlier stage is left running and never waited on. Its
				// pipe is closed so it may die of SIGPIPE if it's still writing.
				previous.closeStdout()
				result.Exit = true
				return result
			case builtinAbort:
				e.discard(previous)
				result.Aborted = true
				result.Status = StatusFailure
				return result
			}

			// Builtins don't read their input.
			e.discard(previous)
			previous = nil
			result.Status = 0
			continue
		}

		proc, err := e.start(ctx, command, previous, last, wd.Path())
		if previous != nil {
			e.reap(previous)
		}
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				e.errorf("%s: command not found", command.Name)
				result.Status = StatusNotFound
			} else {
				e.errorf("%s: %v", command.Name, err)
				result.Status = StatusCannotRun
			}
			previous = nil
			continue
		}

		result.Spawned++
		result.Status = 0
		previous = proc
	}

	result.Terminal = previous
	return result
}

// start spawns a single stage. The output pipe of previous is always consumed
// and closed in the parent, even if starting fails.
func (e *Executor) start(ctx context.Context, command Command, previous *Process, last bool, dir string) (*Process, error) {
	stdio := e.IO.orDiscard()

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "PWD="+dir)
	cmd.Stderr = stdio.Stderr

	if previous != nil {
		stdin := previous.takeStdout()
		defer stdin.Close()
		cmd.Stdin = stdin
	} else {
		stdin, err := e.sharedStdin(stdio.Stdin)
		if err != nil {
			return nil, err
		}
		cmd.Stdin = stdin
	}

	proc := &Process{Command: command, cmd: cmd}

	if last {
		cmd.Stdout = stdio.Stdout
	} else {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, err
		}
		defer w.Close()
		cmd.Stdout = w
		proc.stdout = r
	}

	if err := cmd.Start(); err != nil {
		proc.closeStdout()
		return nil, err
	}

	e.logf("started %q pid %d", command.String(), proc.Pid())
	return proc, nil
}

// sharedStdin returns the shell's input as a file so stages inherit the
// descriptor instead of each copying from the same reader.
func (e *Executor) sharedStdin(in io.Reader) (*os.File, error) {
	if f, ok := in.(*os.File); ok {
		return f, nil
	}
	if e.stdin != nil {
		return e.stdin, nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	go func() {
		if _, err := io.Copy(w, in); err != nil {
			e.logf("copying stdin: %v", err)
		}
		w.Close()
	}()

	e.stdin = r
	return r, nil
}

// discard drops a stage whose output nobody reads.
func (e *Executor) discard(p *Process) {
	if p == nil {
		return
	}
	p.closeStdout()
	e.reap(p)
}

func (e *Executor) reap(p *Process) {
	go func() {
		code, err := p.Wait()
		if err != nil {
			e.logf("reaping pid %d: %v", p.Pid(), err)
			return
		}
		e.logf("pid %d exited with %d", p.Pid(), code)
	}()
}
