package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/hints"
	"github.com/josephlewis42/pipesh/core/shell"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgPath      string
	initialDir   string
	promptSuffix string
	colorMode    string
	command      string
	verbose      bool

	// exitCode is the process exit status after Execute returns.
	exitCode int
)

func newLogger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "[pipesh] ", log.Ltime)
}

// loadConfig reads the configuration file if one was given and applies the
// environment and flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configuration := config.Default()
	if cfgPath != "" {
		var err error
		configuration, err = config.Load(afero.NewOsFs(), cfgPath)
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("Couldn't load config: did you run init?")
		}
		if err != nil {
			return nil, err
		}
	}

	configuration.ApplyEnv(os.LookupEnv)

	flags := cmd.Flags()
	if flags.Changed("dir") {
		configuration.InitialDir = initialDir
	}
	if flags.Changed("prompt") {
		configuration.Prompt = promptSuffix
	}
	if flags.Changed("color") {
		configuration.Color = colorMode
	}

	return configuration, configuration.Validate()
}

// shouldColor resolves the color mode for output written to w.
func shouldColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func shellConfig(cmd *cobra.Command, configuration *config.Configuration, logger *log.Logger) shell.Config {
	home, _ := os.UserHomeDir()
	stdio := shell.IO{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}

	return shell.Config{
		IO:           stdio,
		Dir:          configuration.InitialDir,
		Home:         home,
		PromptSuffix: configuration.Prompt,
		Color:        shouldColor(configuration.Color, stdio.Stdout),
		Logger:       logger,
	}
}

// runCommand runs a single line without an interactive prompt.
func runCommand(cfg shell.Config, line string) error {
	sh, err := shell.New(cfg, nil)
	if err != nil {
		return err
	}
	if _, err := sh.RunLine(context.Background(), line); err != nil {
		return err
	}
	exitCode = sh.LastStatus()
	return nil
}

func runInteractive(cmd *cobra.Command, cfg shell.Config, configuration *config.Configuration, registry *hints.Registry) error {
	rl, err := shell.NewReadline(cfg.IO, &hints.Completer{Registry: registry}, configuration.HistoryPath(), configuration.HistoryLimit)
	if err != nil {
		return err
	}
	defer rl.Close()

	sh, err := shell.New(cfg, rl)
	if err != nil {
		return err
	}

	switch err := sh.Run(context.Background()); {
	case errors.Is(err, shell.ErrInterrupted):
		fmt.Fprintln(cmd.OutOrStdout(), "CTRL-C")
	case errors.Is(err, shell.ErrEOF):
		fmt.Fprintln(cmd.OutOrStdout(), "CTRL-D")
	case err != nil:
		return err
	}
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pipesh",
	Short: "A minimal pipeline shell",
	Long: `A minimal interactive shell that runs commands connected by pipes.

Lines are split on | and whitespace, there is no quoting, globbing or
variable expansion. The builtins are cd [DIR] and exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		logger := newLogger(cmd)

		configuration, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger.Printf("config: %s", configuration)

		cfg := shellConfig(cmd, configuration, logger)
		if cmd.Flags().Changed("command") {
			return runCommand(cfg, command)
		}

		registry, err := hints.Load(configuration, afero.NewOsFs(), os.Getenv("PATH"))
		if err != nil {
			return err
		}
		logger.Printf("loaded %d hints", registry.Len())

		return runInteractive(cmd, cfg, configuration, registry)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory or config.yaml path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.Flags().StringVar(&initialDir, "dir", config.Default().InitialDir, "initial working directory (env "+config.EnvInitialDir+")")
	rootCmd.Flags().StringVar(&promptSuffix, "prompt", config.Default().Prompt, "text shown after the directory in the prompt (env "+config.EnvPrompt+")")
	rootCmd.Flags().StringVar(&colorMode, "color", config.ColorAuto, "colorize the output (always|auto|never)")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single line and exit")
}
