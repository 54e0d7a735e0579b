package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"progviz/internal/app"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default progviz.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			wrote, err := app.WriteDefaultConfig(configPath)
			if err != nil {
				return err
			}
			if !wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists; left unchanged.\n", configPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s.\n", configPath)
			return nil
		},
	}
}
