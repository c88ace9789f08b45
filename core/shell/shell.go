package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/readline"
)

var (
	// ErrEOF is returned by Run when the input is closed.
	ErrEOF = errors.New("input closed")
	// ErrInterrupted is returned by Run when the user interrupts the prompt.
	ErrInterrupted = errors.New("interrupted")
	// ErrNoInput is returned by Run if the shell was created without input.
	ErrNoInput = errors.New("shell has no input")
)

// LineReader supplies the shell's input one line at a time,
// *readline.Instance implements it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

var _ LineReader = (*readline.Instance)(nil)

// Config holds the startup settings of a shell.
type Config struct {
	IO IO
	// Dir is the initial working directory, defaults to RootDir.
	Dir string
	// Home is abbreviated to ~ in the prompt.
	Home         string
	PromptSuffix string
	Color        bool
	// Logger receives debug output, nil disables it.
	Logger *log.Logger
}

type Shell struct {
	io       IO
	input    LineReader
	wd       *WorkingDir
	executor *Executor
	logger   *log.Logger
	colors   *palette

	home         string
	promptSuffix string

	lastRet int
}

// New creates a shell that reads lines from input. input may be nil if only
// RunLine is used.
func New(cfg Config, input LineReader) (*Shell, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = RootDir
	}
	wd, err := NewWorkingDir(dir)
	if err != nil {
		return nil, fmt.Errorf("initial directory: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Shell{
		io:           cfg.IO.orDiscard(),
		input:        input,
		wd:           wd,
		logger:       logger,
		colors:       newPalette(cfg.Color),
		home:         cfg.Home,
		promptSuffix: cfg.PromptSuffix,
	}
	s.executor = &Executor{
		IO:     s.io,
		Logger: logger,
		Errorf: s.errorf,
	}
	return s, nil
}

// NewReadline creates a line editor on the given streams. historyFile may be
// empty to keep history in memory.
func NewReadline(stdio IO, completer readline.AutoCompleter, historyFile string, historyLimit int) (*readline.Instance, error) {
	stdio = stdio.orDiscard()
	cfg := &readline.Config{
		Prompt:       DefaultPromptSuffix,
		HistoryFile:  historyFile,
		HistoryLimit: historyLimit,
		AutoComplete: completer,
		Stdin:        readline.NewCancelableStdin(stdio.Stdin),
		Stdout:       stdio.Stdout,
		Stderr:       stdio.Stderr,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	return readline.NewEx(cfg)
}

// WorkingDir returns the shell's current directory.
func (s *Shell) WorkingDir() string {
	return s.wd.Path()
}

// LastStatus returns the exit code of the last awaited command.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

func (s *Shell) errorf(format string, a ...interface{}) {
	tag := s.colors.sprint(s.colors.err, "pipesh:")
	fmt.Fprintf(s.io.Stderr, "%s %s\n", tag, fmt.Sprintf(format, a...))
}

// Run reads and runs lines until exit is called or reading fails.
//
// It returns nil after exit, ErrEOF or ErrInterrupted if the input was closed
// or interrupted and any other error if the shell can't continue.
func (s *Shell) Run(ctx context.Context) error {
	if s.input == nil {
		return ErrNoInput
	}

	for {
		s.input.SetPrompt(s.Prompt())
		line, err := s.input.Readline()

		switch {
		case err == io.EOF:
			return ErrEOF
		case err == readline.ErrInterrupt:
			return ErrInterrupted
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		exit, err := s.RunLine(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// RunLine parses and runs a single line, waiting for the last command of the
// pipeline. exit is true if the line called the exit builtin.
//
// Parse and command errors are reported to the user, the returned error is
// only set if waiting on a process failed.
func (s *Shell) RunLine(ctx context.Context, line string) (exit bool, err error) {
	pipeline, err := Parse(line)
	if err != nil {
		s.errorf("%v", err)
		return false, nil
	}
	if len(pipeline) == 0 {
		return false, nil // empty line
	}

	s.logger.Printf("running %q in %s", pipeline.String(), s.wd.Path())
	result := s.executor.Run(ctx, pipeline, s.wd)
	if result.Exit {
		return true, nil
	}

	if result.Terminal != nil {
		code, err := result.Terminal.Wait()
		if err != nil {
			return false, fmt.Errorf("waiting for %s: %w", result.Terminal.Command.Name, err)
		}
		s.lastRet = code
		s.logger.Printf("%s exited with %d", result.Terminal.Command.Name, code)
	} else {
		s.lastRet = result.Status
	}

	fmt.Fprintln(s.io.Stdout)
	return false, nil
}
