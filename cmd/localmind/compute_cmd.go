package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coderdayton/localmind/compute"
	"github.com/coderdayton/localmind/solver"
)

func newComputeCmd() *cobra.Command {
	var (
		augment bool
		query   string
	)

	cmd := &cobra.Command{
		Use:   "compute <text>",
		Short: "Run the local solver registry against a piece of text",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text := args[0]

			if augment || query != "" {
				result := compute.ContextAwareCompute(compute.Context{UserQuery: query, Thought: text})
				printAugmented(result.AugmentedResult)
				return
			}

			result := compute.TryLocalCompute(text, true)
			if !result.Solved {
				color.Yellow("no solver matched")
				return
			}
			printComputeResult(result)
		},
	}

	cmd.Flags().BoolVar(&augment, "augment", false, "splice computed results into the text instead of solving it directly")
	cmd.Flags().StringVar(&query, "query", "", "user query used for domain detection in augment mode")

	return cmd
}

func printComputeResult(r solver.ComputeResult) {
	color.Green("%s", r.Result.String())
	fmt.Printf("  method:     %s\n", r.Method)
	fmt.Printf("  confidence: %.2f\n", r.Confidence)
	fmt.Printf("  time:       %dms\n", r.TimeMS)
}

func printAugmented(r compute.AugmentedResult) {
	fmt.Println(r.Augmented)
	if !r.HasComputations {
		color.Yellow("no computations found")
		return
	}
	for _, c := range r.Computations {
		fmt.Printf("  - %s (%s, confidence %.2f)\n", c.Result.String(), c.Method, c.Confidence)
	}
}
