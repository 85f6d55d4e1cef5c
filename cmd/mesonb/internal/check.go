package internal

import (
	"fmt"

	"github.com/goplus/meson/internal/env"
	"github.com/goplus/meson/internal/toolchain"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that meson and ninja are installed and recent enough",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var failed bool
	for _, t := range []struct{ bin, min string }{
		{env.MesonBin(), toolchain.MinMeson},
		{env.NinjaBin(), toolchain.MinNinja},
	} {
		tool, err := toolchain.Check(t.bin, t.min)
		if err != nil {
			fmt.Fprintf(out, "%-8s FAIL  %v\n", t.bin, err)
			failed = true
			continue
		}
		fmt.Fprintf(out, "%-8s ok    %s (%s)\n", t.bin, tool.Version, tool.Path)
	}
	if failed {
		return fmt.Errorf("toolchain check failed")
	}
	return nil
}
