package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Print each plan with its reconciled requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}
			snap, err := a.Plan()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range snap.Program.Plans {
				fmt.Fprintln(out, headingStyle.Render(p.Name))
				for _, t := range p.Terms {
					fmt.Fprintln(out, "  "+termStyle.Render(t.Name))
					for _, s := range t.Slots {
						name := string(s.Course.Name)
						if s.Alternative {
							name += " (alternative)"
						}
						fmt.Fprintln(out, "    "+courseStyle.Render(name))
						fmt.Fprintf(out, "      %s %s\n", labelStyle.Render("prereqs:"), reqList(s.Course.Prereqs))
						fmt.Fprintf(out, "      %s  %s\n", labelStyle.Render("coreqs:"), reqList(s.Course.Coreqs))
					}
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
