package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"progviz/internal/domain"
	"progviz/internal/requisite"
)

func requisitesCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "requisites",
		Short: "Print the prerequisites and corequisites extracted per course",
		Long: "Print the prerequisite and corequisite lists extracted from every catalog\n" +
			"description, or from a single description given with --text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("text") {
				reqs, err := requisite.Extract(text)
				if err != nil {
					return err
				}
				printRequisites(out, reqs.Prereqs, reqs.Coreqs)
				return nil
			}

			a, err := requireApp()
			if err != nil {
				return err
			}
			cat, _, err := a.Catalog()
			if err != nil {
				return err
			}
			for _, c := range cat.Courses() {
				if c.Elective != domain.ElectiveNone {
					continue
				}
				fmt.Fprintln(out, courseStyle.Render(string(c.Name)))
				printRequisites(out, c.Prereqs, c.Coreqs)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "extract from this description instead of the catalog")
	return cmd
}

func printRequisites(out io.Writer, prereqs, coreqs []domain.Requirement) {
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("prereqs:"), reqList(prereqs))
	fmt.Fprintf(out, "  %s  %s\n", labelStyle.Render("coreqs:"), reqList(coreqs))
}
