package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/josephlewis42/pipesh/core/hints"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// hintsCmd lists the completions offered by the shell.
var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Show the completion hints in the order they're matched.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		registry, err := hints.Load(configuration, afero.NewOsFs(), os.Getenv("PATH"))
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 8, 8, 2, ' ', 0)
		defer tw.Flush()

		fmt.Fprintln(tw, "HINT\tCOMPLETES")
		for _, e := range registry.Entries() {
			completion, _ := e.Completion()
			fmt.Fprintf(tw, "%s\t%q\n", e.Display, completion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hintsCmd)
}
