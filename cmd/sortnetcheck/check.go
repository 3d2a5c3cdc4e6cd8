package main

import (
	"fmt"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"

	"github.com/mizar/sortingnetwork-tauri-app/layout"
	"github.com/mizar/sortingnetwork-tauri-app/netfmt"
	"github.com/mizar/sortingnetwork-tauri-app/pool"
	"github.com/mizar/sortingnetwork-tauri-app/verify"
)

func newCheckCmd() *cobra.Command {
	var (
		workers int
		svgPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "check <network-file>",
		Short: "Verify a network read from a file (network text format), or stdin if omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			net, err := netfmt.Parse(input)
			if err != nil {
				return err
			}

			level := logiface.LevelInformational
			if verbose {
				level = logiface.LevelDebug
			}
			logger := stumpy.L.New(
				stumpy.L.WithStumpy(),
				stumpy.L.WithLevel(level),
			)

			future := verify.Run(net.N, net.Comparators, pool.New(workers), logger)

			final, err := drain(cmd, future)
			if err != nil {
				return err
			}

			if svgPath != "" {
				pos := layout.Layout(net.N, net.Comparators)
				svg := layout.Render(pos, final.Used, final.Unsorted, final.Progress, final.ProgressAll)
				if err := writeSVG(svgPath, pos, svg); err != nil {
					return fmt.Errorf("sortnet: check: writing svg: %w", err)
				}
			}

			unused := 0
			for _, u := range final.Used {
				if !u {
					unused++
				}
			}
			violations := 0
			for _, row := range final.Unsorted {
				for _, bad := range row {
					if bad {
						violations++
					}
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "n=%d m=%d unused=%d violations=%d elapsed_ms=%d\n",
				final.N, final.M, unused, violations, final.ElapsedMS)
			if violations == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "result: sorting network")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "result: not a sorting network")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size (default: available parallelism)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG rendering of the network to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level structured logging")

	return cmd
}

// drain blocks on future until a terminal message arrives, printing each
// intermediate Progress/Log as it is received, and returns the final
// Progress snapshot.
func drain(cmd *cobra.Command, future *verify.Future) (verify.Progress, error) {
	var last verify.Progress
	for {
		msg, ok := future.Recv()
		if !ok {
			return last, fmt.Errorf("sortnet: check: progress stream closed without a terminal message")
		}
		switch m := msg.(type) {
		case verify.Progress:
			last = m
			fmt.Fprintf(cmd.ErrOrStderr(), "progress %d/%d: %s\n", m.Progress, m.ProgressAll, m.Log)
		case verify.LogMessage:
			fmt.Fprintf(cmd.ErrOrStderr(), "log: %s\n", m.Text)
		case verify.DoneMessage:
			return last, nil
		case verify.CancelMessage:
			return last, fmt.Errorf("sortnet: check: verification cancelled")
		case verify.ErrorMessage:
			return last, fmt.Errorf("sortnet: check: %s", m.Text)
		}
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := readAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("sortnet: check: reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("sortnet: check: reading %s: %w", args[0], err)
	}
	return string(data), nil
}
