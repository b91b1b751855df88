package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show mined stress response patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		mine, _ := cmd.Flags().GetBool("mine")
		minConfidence, _ := cmd.Flags().GetFloat64("min-confidence")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if mine {
			if _, err := a.service.MinePatterns(ctx, a.userID); err != nil {
				return fmt.Errorf("mining pass: %w", err)
			}
		}

		surfaced, err := a.service.StressPatterns(ctx, a.userID, minConfidence)
		if err != nil {
			return err
		}
		if len(surfaced) == 0 {
			fmt.Println("No patterns surfaced yet. Patterns need repeated evidence before they show up.")
			return nil
		}

		for _, p := range surfaced {
			fmt.Printf("%s  %s\n", strings.ToUpper(p.Type), p.Signature)
			fmt.Printf("  confidence %.2f, seen %d times (last %s)\n", p.Confidence, p.Occurrences, p.LastOccurrence.Format("2006-01-02"))
			if mean, ok := p.ResponseProfile["mean_load"]; ok {
				fmt.Printf("  mean load %.0f", mean)
				if peak, ok := p.ResponseProfile["peak_load"]; ok {
					fmt.Printf(", peak %.0f", peak)
				}
				if rec, ok := p.ResponseProfile["recovery_hours"]; ok {
					fmt.Printf(", ~%.0fh to recover", rec)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	patternsCmd.Flags().Bool("mine", false, "Run a mining pass before listing")
	patternsCmd.Flags().Float64("min-confidence", 0, "Extra confidence floor on top of the global one")
}
