package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anupamd/studypulse/internal/scheduler"
)

// sweepCmd runs the weekly maintenance pass for every known user, the
// same jobs the hosting platform would schedule.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the weekly assessment and pattern mining pass for all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		users, err := a.store.Sessions().Users(cmd.Context())
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No users with recorded sessions.")
			return nil
		}

		runner := scheduler.NewRunner(a.assessor, a.miner, a.log)
		runner.RunWeekly(cmd.Context(), users)
		runner.Close()

		fmt.Printf("Swept %d user(s).\n", len(users))
		return nil
	},
}
