package shell

import (
	"errors"
	"fmt"
	"strings"
)

// PipeDelimiter separates the commands of a pipeline.
const PipeDelimiter = "|"

// ErrEmptyCommand is returned for a pipeline segment without a command.
var ErrEmptyCommand = errors.New("empty command in pipeline")

// ParseError describes which segment of a line failed to parse.
type ParseError struct {
	// Segment is the zero based index of the segment.
	Segment int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error in command %d: %v", e.Segment+1, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Command is a single stage of a pipeline.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Pipeline is an ordered list of commands, each command's stdout feeds the
// next command's stdin.
type Pipeline []Command

func (p Pipeline) String() string {
	var stages []string
	for _, c := range p {
		stages = append(stages, c.String())
	}
	return strings.Join(stages, " "+PipeDelimiter+" ")
}

// Parse splits a line into a pipeline. Arguments are split on whitespace and
// taken verbatim; there is no quoting or expansion.
//
// A blank line results in an empty pipeline.
func Parse(line string) (Pipeline, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	segments := strings.Split(line, PipeDelimiter)
	out := make(Pipeline, 0, len(segments))
	for i, segment := range segments {
		fields := strings.Fields(segment)
		if len(fields) == 0 {
			return nil, &ParseError{Segment: i, Err: ErrEmptyCommand}
		}

		cmd := Command{Name: fields[0]}
		if len(fields) > 1 {
			cmd.Args = fields[1:]
		}
		out = append(out, cmd)
	}
	return out, nil
}
