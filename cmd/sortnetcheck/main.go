// Command sortnetcheck verifies whether a comparator network, given in the
// network text format, is a sorting network, reporting redundant
// comparators and unsorted position pairs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sortnetcheck",
		Short: "Verify comparator networks against the 0/1-principle",
		Long: `sortnetcheck verifies whether a comparator network on 2..64 wires is a
sorting network, by bit-parallel exploration of every reachable 0/1
assignment. It reports how many comparators never actually fire (redundant)
and how many wire pairs end up in violation; the SVG written with --svg
shows which ones.`,
		SilenceUsage: true,
	}

	root.AddCommand(newCheckCmd(), newGenerateCmd())
	return root
}
