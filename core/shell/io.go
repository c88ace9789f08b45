package shell

import (
	"io"
	"os"
)

// IO holds the standard streams the shell reads from and writes to. Commands
// at either end of a pipeline inherit them.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdIO returns the streams of the current process.
func StdIO() IO {
	return IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// orDiscard fills in missing streams: reads see EOF and writes are discarded.
func (i IO) orDiscard() IO {
	if i.Stdin == nil {
		i.Stdin = eofReader{}
	}
	if i.Stdout == nil {
		i.Stdout = io.Discard
	}
	if i.Stderr == nil {
		i.Stderr = io.Discard
	}
	return i
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
