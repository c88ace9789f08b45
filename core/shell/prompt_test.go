package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_Prompt(t *testing.T) {
	home := tempDir(t)
	sub := filepath.Join(home, "src")
	sibling := home + "-other"
	for _, dir := range []string{sub, sibling} {
		require.NoError(t, mkdir(dir))
	}

	cases := map[string]struct {
		cfg  Config
		want string
	}{
		"root":              {Config{}, "/ >> "},
		"custom-suffix":     {Config{PromptSuffix: "% "}, "/ % "},
		"home":              {Config{Dir: home, Home: home}, "~ >> "},
		"under-home":        {Config{Dir: sub, Home: home}, "~/src >> "},
		"sibling-of-home":   {Config{Dir: sibling, Home: home}, sibling + " >> "},
		"root-home-ignored": {Config{Home: "/"}, "/ >> "},
		"color":             {Config{Color: true}, "\x1b[34;1m/\x1b[0m >> "},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			s, err := New(tc.cfg, nil)
			require.NoError(t, err)

			assert.Equal(t, tc.want, s.Prompt())
		})
	}
}

func TestShell_errorf_color(t *testing.T) {
	tio := newTestIO("")
	s, err := New(Config{IO: tio.IO, Color: true}, nil)
	require.NoError(t, err)

	s.errorf("%s: command not found", "nope")
	assert.Equal(t, "\x1b[31;1mpipesh:\x1b[0m nope: command not found\n", tio.stderr.String())
}
