package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/monitor"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Show the user's current cognitive load",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		status, err := a.service.CurrentLoad(cmd.Context(), a.userID)
		if err != nil && !errors.Is(err, load.ErrInsufficientData) {
			return err
		}

		if errors.Is(err, load.ErrInsufficientData) {
			fmt.Println("Not enough data yet. Showing defaults.")
		}
		fmt.Printf("Load:       %.0f/100 (%s)\n", status.Score, status.Level)
		fmt.Printf("Confidence: %.0f%%\n", status.Confidence*100)
		fmt.Printf("Trend:      %s\n", status.Trend)
		if len(status.Indicators) > 0 {
			fmt.Println("Stress indicators:")
			for _, ind := range status.Indicators {
				fmt.Printf("  - %s (%s)\n", strings.ToLower(ind.Type), ind.Severity)
			}
		}
		return nil
	},
}

var loadHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the load timeseries",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		granularity, _ := cmd.Flags().GetString("granularity")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		to := time.Now()
		from := to.AddDate(0, 0, -days)
		points, err := a.service.LoadHistory(cmd.Context(), a.userID, from, to, granularity)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Println("No metrics in range.")
			return nil
		}

		layout := "2006-01-02"
		if granularity == monitor.GranularityHour {
			layout = "2006-01-02 15:00"
		}
		fmt.Printf("%-17s  %-7s  %-7s  %s\n", "Bucket", "Avg", "Peak", "Samples")
		for _, p := range points {
			fmt.Printf("%-17s  %-7.1f  %-7.1f  %d\n", p.Bucket.Format(layout), p.Avg, p.Peak, p.Samples)
		}
		return nil
	},
}

func init() {
	loadHistoryCmd.Flags().Int("days", 7, "How many days back to include")
	loadHistoryCmd.Flags().String("granularity", monitor.GranularityDay, "Bucket size: hour or day")
	loadCmd.AddCommand(loadHistoryCmd)
}
