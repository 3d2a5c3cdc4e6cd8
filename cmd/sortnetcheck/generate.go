package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizar/sortingnetwork-tauri-app/netfmt"
	"github.com/mizar/sortingnetwork-tauri-app/networks"
	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

var generators = map[string]func(int) []planner.Comparator{
	"odd-even-transposition": networks.OddEvenTranspositionSort,
	"insertion":              networks.InsertionSort,
	"batcher":                networks.BatcherOddEvenMergeSort,
}

func newGenerateCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "generate <n>",
		Short: "Print a classic comparator network in network text format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[family]
			if !ok {
				return fmt.Errorf("sortnet: generate: unknown family %q (want one of odd-even-transposition, insertion, batcher)", family)
			}

			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("sortnet: generate: invalid n %q: %w", args[0], err)
			}

			cmp := gen(n)
			fmt.Fprint(cmd.OutOrStdout(), netfmt.Format(netfmt.Network{N: n, Comparators: cmp}))
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "odd-even-transposition", "network family: odd-even-transposition, insertion, batcher")

	return cmd
}
