package shell

import (
	"sort"
)

const (
	BuiltinCd   = "cd"
	BuiltinExit = "exit"
)

type builtinStatus int

const (
	// builtinDone continues with the next stage, earlier output is dropped.
	builtinDone builtinStatus = iota
	// builtinAbort skips the rest of the pipeline.
	builtinAbort
	// builtinExit quits the shell.
	builtinExit
)

type builtinFunc func(e *Executor, wd *WorkingDir, args []string) builtinStatus

// allBuiltins holds the commands the shell runs itself.
var allBuiltins = map[string]builtinFunc{
	BuiltinCd:   cd,
	BuiltinExit: exit,
}

// lookupBuiltin returns the builtin called name, if any.
func lookupBuiltin(name string) (builtinFunc, bool) {
	builtin, ok := allBuiltins[name]
	return builtin, ok
}

// BuiltinNames returns the sorted builtin names.
func BuiltinNames() []string {
	var names []string
	for name := range allBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cd changes to the first argument or RootDir, extra arguments are ignored.
func cd(e *Executor, wd *WorkingDir, args []string) builtinStatus {
	target := RootDir
	if len(args) > 0 {
		target = args[0]
	}

	if err := wd.Chdir(target); err != nil {
		e.errorf("%s: %v", BuiltinCd, err)
		return builtinAbort
	}
	e.logf("cd %s", wd.Path())
	return builtinDone
}

// exit ignores its arguments.
func exit(e *Executor, wd *WorkingDir, args []string) builtinStatus {
	return builtinExit
}
