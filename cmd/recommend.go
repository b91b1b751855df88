package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/intervene"
	"github.com/anupamd/studypulse/internal/llm"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest workload interventions for the current risk level",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		assessment, err := a.store.Assessments().Latest(ctx, a.userID)
		if err != nil {
			return err
		}
		if assessment == nil {
			assessment, err = a.assessor.Assess(ctx, a.userID)
			if err != nil {
				return err
			}
		}
		if assessment.InsufficientData {
			fmt.Println("Not enough history to recommend interventions yet.")
			return nil
		}

		profile, err := a.service.Profile(ctx, a.userID)
		if err != nil {
			return err
		}

		suggestions := intervene.Recommend(*assessment, profile)
		for i := range suggestions {
			if suggestions[i].Action != intervene.ActionSupportiveFraming {
				continue
			}
			framing := generateFraming(cmd, a, *assessment, profile)
			suggestions[i].Framing = framing.Message
		}

		fmt.Printf("Risk level %s. Suggested actions:\n\n", assessment.RiskLevel)
		for i, s := range suggestions {
			fmt.Printf("%d. %s\n", i+1, strings.ReplaceAll(s.Action, "_", " "))
			if s.Framing != "" {
				fmt.Printf("   %q\n", s.Framing)
			}
			fmt.Printf("   why: %s\n", s.Rationale)
			fmt.Printf("   expected: %s\n", s.ExpectedBenefit)
		}
		fmt.Println("\nRecord a response with: studypulse recommend ack <action> [--dismiss]")
		return nil
	},
}

var recommendAckCmd = &cobra.Command{
	Use:   "ack <action>",
	Short: "Record whether a suggested intervention was followed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dismiss, _ := cmd.Flags().GetBool("dismiss")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		latest, err := a.store.Assessments().Latest(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		level := burnout.LevelLow
		if latest != nil {
			level = latest.RiskLevel
		}

		err = a.service.ApplyIntervention(cmd.Context(), store.InterventionAck{
			UserID:         a.userID,
			InterventionID: fmt.Sprintf("cli-%d", time.Now().Unix()),
			Action:         args[0],
			RiskLevel:      level,
			Accepted:       !dismiss,
		})
		if err != nil {
			return err
		}
		if dismiss {
			fmt.Println("Noted. The suggestion was dismissed.")
		} else {
			fmt.Println("Noted. Accepted suggestions shape future recommendations.")
		}
		return nil
	},
}

func init() {
	recommendAckCmd.Flags().Bool("dismiss", false, "Record the suggestion as dismissed")
	recommendCmd.AddCommand(recommendAckCmd)
}

// generateFraming prefers a configured LLM provider and falls back to
// the canned message on any failure or timeout.
func generateFraming(cmd *cobra.Command, a *app, assessment store.Assessment, profile patterns.StressProfile) intervene.Framing {
	cfg, found := llm.DiscoverConfig()
	if !found {
		return intervene.FallbackFraming(assessment.RiskLevel)
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, a.log)
	if err != nil {
		a.log.Warn().Err(err).Msg("llm provider unavailable, using fallback framing")
		return intervene.FallbackFraming(assessment.RiskLevel)
	}

	svc := intervene.NewFramingService(provider, intervene.DefaultConfig())
	svc.RequestFraming(cmd.Context(), assessment, profile)

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if f, ok := svc.ConsumeFraming(assessment.RiskLevel); ok {
			return f
		}
		time.Sleep(50 * time.Millisecond)
	}
	return intervene.FallbackFraming(assessment.RiskLevel)
}
