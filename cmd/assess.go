package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anupamd/studypulse/internal/burnout"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an on-demand burnout risk assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		assessment, err := a.assessor.AssessOnDemand(cmd.Context(), a.userID)
		cached := errors.Is(err, burnout.ErrRateLimited)
		if err != nil && !cached {
			return err
		}

		if cached {
			fmt.Printf("Cached assessment from %s (on-demand runs are limited to one per day):\n\n", assessment.Date)
		}
		if assessment.InsufficientData {
			fmt.Println("Not enough history for a burnout assessment yet. Keep studying; a few sessions are enough.")
			return nil
		}

		fmt.Printf("Burnout risk: %.0f/100 (%s)\n\n", assessment.RiskScore, assessment.RiskLevel)
		fmt.Println("Contributing factors:")
		for _, f := range assessment.Factors {
			if strings.HasPrefix(f.Name, "warning:") {
				continue
			}
			fmt.Printf("  %-22s %5.1f / %-4.0f %s\n", strings.ReplaceAll(f.Name, "_", " "), f.Contribution, f.Cap, f.Detail)
		}

		var warnings []string
		for _, f := range assessment.Factors {
			if strings.HasPrefix(f.Name, "warning:") {
				warnings = append(warnings, strings.TrimPrefix(f.Name, "warning:"))
			}
		}
		if len(warnings) > 0 {
			fmt.Printf("\nWarning signals: %s\n", strings.Join(warnings, ", "))
		}

		if len(assessment.Recommendations) > 0 {
			fmt.Println("\nRecommendations:")
			for _, r := range assessment.Recommendations {
				fmt.Printf("  - %s\n", r)
			}
		}
		return nil
	},
}
