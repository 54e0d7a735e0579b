package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Read the workbooks and write the static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}
			res, err := a.Build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Built %d plan(s) for %s into %s\n", len(res.Program.Plans), res.Program.Department, cfg.Output)
			if n := len(res.Warnings); n > 0 {
				fmt.Fprintf(out, "%d warning(s); see log\n", n)
			}
			fmt.Fprintf(out, "Fingerprint: %s\n", res.Manifest.Fingerprint)
			return nil
		},
	}
}
