package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coderdayton/localmind/derivation"
)

func newDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Verify a derivation chain read from stdin and report any mistakes",
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := io.ReadAll(os.Stdin)
			must(err)

			steps := derivation.ExtractSteps(string(raw))
			if len(steps) == 0 {
				color.Yellow("no derivation steps found")
				return
			}

			result := derivation.Verify(steps)
			if result.Valid {
				color.Green("valid: %d steps verified", len(steps))
			} else {
				color.Red("invalid at step %d (%s): %s", result.InvalidStep, result.ErrorKind, result.Error)
			}

			mistakes := derivation.DetectMistakes(steps)
			for _, m := range mistakes.Mistakes {
				fmt.Printf("  step %d: %s (confidence %.2f) - %s\n", m.StepNumber, m.Type, m.Confidence, m.Explanation)
				if m.Suggestion != "" {
					fmt.Printf("    suggestion: %s\n", m.Suggestion)
				}
			}

			suggestion := derivation.SuggestNextStep(steps)
			if suggestion.Found {
				fmt.Printf("next step: %s -> %s (%s)\n", suggestion.From, suggestion.Best.After, suggestion.Best.Name)
			}
		},
	}

	return cmd
}
