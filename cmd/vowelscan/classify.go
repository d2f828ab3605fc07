package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teslashibe/go-lipsync/pkg/vowel"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <f1> <f2>",
		Short: "Classify a formant pair in Hz",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f1, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid f1 %q: %w", args[0], err)
			}
			f2, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid f2 %q: %w", args[1], err)
			}

			idx := vowel.Classify(f1, f2)
			if idx < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			c := vowel.Clusters()[idx]
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(centroid %.0f, %.0f; distance %.1f Hz)\n",
				c.Label, c.CenterF1, c.CenterF2, c.Distance(f1, f2))
			return nil
		},
	}
}
