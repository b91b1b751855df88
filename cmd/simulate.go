package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anupamd/studypulse/internal/events"
	"github.com/anupamd/studypulse/internal/monitor"
)

// simulateCmd drives a synthetic session through the full monitoring
// pipeline so the other commands have data to work with.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a synthetic study session through the monitor",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		responses, _ := cmd.Flags().GetInt("responses")
		errorRate, _ := cmd.Flags().GetFloat64("error-rate")
		baseLatency, _ := cmd.Flags().GetInt("latency-ms")
		daysToExam, _ := cmd.Flags().GetInt("days-to-exam")
		seed, _ := cmd.Flags().GetInt64("seed")

		if errorRate < 0 || errorRate > 1 {
			return fmt.Errorf("error-rate must be between 0 and 1")
		}
		if responses < 1 {
			return fmt.Errorf("responses must be positive")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		rng := rand.New(rand.NewSource(seed))
		m := monitor.NewMonitor(a.cfg.Load, a.store.Metrics(), a.store.Sessions(), a.log, monitor.SessionInfo{
			UserID:     a.userID,
			Topic:      topic,
			DaysToExam: daysToExam,
			Planned:    true,
		})
		if err := m.Start(ctx); err != nil {
			return err
		}

		// Virtual time: events carry timestamps spaced as if the session
		// took real minutes, without the command actually sleeping.
		at := time.Now()
		correct := 0
		var last monitor.Status
		for i := 0; i < responses; i++ {
			latency := baseLatency + rng.Intn(baseLatency/2+1)
			ok := rng.Float64() >= errorRate
			if ok {
				correct++
			} else {
				// Wrong answers tend to take longer.
				latency += baseLatency / 2
			}
			at = at.Add(time.Duration(latency) * time.Millisecond)
			ev := events.ResponseEvent{
				Timestamp: at,
				ItemID:    fmt.Sprintf("item-%d", i%8),
				Correct:   ok,
				LatencyMs: latency,
			}
			if err := m.Observe(ev); err != nil {
				return err
			}

			if rng.Float64() < 0.1 {
				pause := time.Duration(30+rng.Intn(90)) * time.Second
				at = at.Add(pause)
				if err := m.Observe(events.PauseEvent{Timestamp: at, Duration: pause}); err != nil {
					return err
				}
			}

			// One monitoring pass roughly every five responses.
			if (i+1)%5 == 0 || i == responses-1 {
				last, err = m.Tick(ctx)
				if err != nil {
					return err
				}
			}
		}

		selfRating := 3
		if errorRate > 0.4 {
			selfRating = 4
		}
		if err := m.End(ctx, 1.0, selfRating); err != nil {
			return err
		}

		fmt.Printf("Simulated %d responses on %q (%d correct)\n", responses, topic, correct)
		fmt.Printf("Final load: %.1f (%s)", last.Estimate.Score, last.Level)
		if last.InsufficientData {
			fmt.Print(" [sparse window]")
		}
		fmt.Println()
		if len(last.Indicators) > 0 {
			names := make([]string, len(last.Indicators))
			for i, ind := range last.Indicators {
				names[i] = string(ind.Type)
			}
			fmt.Printf("Indicators: %s\n", strings.Join(names, ", "))
		}
		if shift := m.CumulativeShift(); shift != 0 {
			fmt.Printf("Difficulty shift applied: %+d\n", shift)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("topic", "algebra", "Topic for the synthetic session")
	simulateCmd.Flags().Int("responses", 20, "Number of responses to generate")
	simulateCmd.Flags().Float64("error-rate", 0.2, "Fraction of incorrect responses")
	simulateCmd.Flags().Int("latency-ms", 8000, "Base response latency in milliseconds")
	simulateCmd.Flags().Int("days-to-exam", -1, "Days until the next exam, -1 for none")
	simulateCmd.Flags().Int64("seed", 1, "Random seed")
}
