package shell

import (
	"strings"

	"github.com/fatih/color"
)

// DefaultPromptSuffix follows the working directory in the prompt.
const DefaultPromptSuffix = ">> "

type palette struct {
	dir *color.Color
	err *color.Color
}

func newPalette(enabled bool) *palette {
	if !enabled {
		return &palette{}
	}

	p := &palette{
		dir: color.New(color.FgBlue, color.Bold),
		err: color.New(color.FgRed, color.Bold),
	}
	// Callers decide when color is wanted, even if stdout isn't a TTY.
	p.dir.EnableColor()
	p.err.EnableColor()
	return p
}

func (p *palette) sprint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// Prompt renders the prompt, e.g. "~/src >> ".
func (s *Shell) Prompt() string {
	pwd := s.wd.Path()
	if home := s.home; home != "" && home != RootDir {
		switch {
		case pwd == home:
			pwd = "~"
		case strings.HasPrefix(pwd, home+"/"):
			pwd = "~" + strings.TrimPrefix(pwd, home)
		}
	}

	suffix := s.promptSuffix
	if suffix == "" {
		suffix = DefaultPromptSuffix
	}

	return s.colors.sprint(s.colors.dir, pwd) + " " + suffix
}
