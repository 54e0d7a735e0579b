package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print or verify the digest of the generated site",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireApp(); err != nil {
				return err
			}
			m, changed, err := wire.Publisher.Verify()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fingerprint: %s\n", m.Fingerprint)
			if !verify {
				return nil
			}
			if len(changed) > 0 {
				return fmt.Errorf("%d file(s) differ from the manifest: %s", len(changed), strings.Join(changed, ", "))
			}
			fmt.Fprintf(out, "All %d file(s) match the manifest.\n", len(m.Files))
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "recompute file digests and compare with the manifest")
	return cmd
}
