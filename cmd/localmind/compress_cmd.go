package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coderdayton/localmind/compress"
)

func newCompressCmd() *cobra.Command {
	var (
		query string
		ratio float64
	)

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress text read from stdin using the telegraphic rewrite pipeline",
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := io.ReadAll(os.Stdin)
			must(err)

			cfg := compress.Default()
			cfg.TargetRatio = ratio

			result := compress.Compress(string(raw), query, &cfg)

			fmt.Println(result.Compressed)
			color.Cyan("tokens: %d -> %d (ratio %.2f)", result.OriginalTokens, result.CompressedTokens, result.Ratio)
			if result.CorefForced > 0 || result.CausalForced > 0 {
				fmt.Printf("  closure: %d coreference, %d causal\n", result.CorefForced, result.CausalForced)
			}
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "user query used to steer relevance scoring")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "explicit target compression ratio (0 uses adaptive selection)")

	return cmd
}
