package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <child>",
	Short: "Delete a child's attempts and insights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes all practice history for %q. Re-run with --yes to confirm.\n", args[0])
			return nil
		}

		childID := session.ChildID(args[0])
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			if err := st.AttemptLog().Clear(ctx, childID); err != nil {
				return fmt.Errorf("clear attempts: %w", err)
			}
			if err := st.InsightStore().Clear(ctx, childID); err != nil {
				return fmt.Errorf("clear insights: %w", err)
			}

			// The lifetime counter drives the insight cadence; a reset
			// starts it over with the history.
			profile, err := st.Profiles().Get(ctx, childID)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if profile != nil {
				profile.TotalAttempts = 0
				if err := st.Profiles().Upsert(ctx, profile); err != nil {
					return fmt.Errorf("reset profile: %w", err)
				}
			}

			fmt.Printf("Practice history for %q cleared.\n", args[0])
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation")
}
