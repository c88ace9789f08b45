package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	// EnvInitialDir overrides initial_dir when set.
	EnvInitialDir = "PIPESH_DIR"
	// EnvPrompt overrides prompt when set.
	EnvPrompt = "PIPESH_PROMPT"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configDir string

	Prompt       string `json:"prompt" validate:"required"`
	InitialDir   string `json:"initial_dir" validate:"required"`
	Color        string `json:"color" validate:"oneof=auto always never"`
	HistoryFile  string `json:"history_file"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`

	Hints Hints `json:"hints"`
}

type Hints struct {
	IncludePath bool        `json:"include_path"`
	Entries     []HintEntry `json:"entries" validate:"unique=Display,dive"`
}

type HintEntry struct {
	Display      string `json:"display" validate:"required"`
	CompleteUpTo string `json:"complete_up_to"`
}

func validateHintEntry(sl validator.StructLevel) {
	entry := sl.Current().Interface().(HintEntry)
	if !strings.HasPrefix(entry.Display, entry.CompleteUpTo) {
		sl.ReportError(entry.CompleteUpTo, "complete_up_to", "CompleteUpTo", "prefix", entry.Display)
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	validate.RegisterStructValidation(validateHintEntry, HintEntry{})

	return validate.Struct(c)
}

// ApplyEnv overrides fields that have an environment variable equivalent.
func (c *Configuration) ApplyEnv(lookup func(string) (string, bool)) {
	if dir, ok := lookup(EnvInitialDir); ok && dir != "" {
		c.InitialDir = dir
	}
	if prompt, ok := lookup(EnvPrompt); ok && prompt != "" {
		c.Prompt = prompt
	}
}

// HistoryPath returns the path readline should persist history to, or the
// empty string if history is kept in memory.
func (c *Configuration) HistoryPath() string {
	switch {
	case c.HistoryFile == "":
		return ""
	case filepath.IsAbs(c.HistoryFile), c.configDir == "":
		return c.HistoryFile
	default:
		return filepath.Join(c.configDir, c.HistoryFile)
	}
}

func (c *Configuration) String() string {
	return fmt.Sprintf("prompt=%q initial_dir=%q color=%s hints=%d", c.Prompt, c.InitialDir, c.Color, len(c.Hints.Entries))
}

// Default returns a copy of the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
