package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
)

var insightsCmd = &cobra.Command{
	Use:   "insights <child>",
	Short: "List learning insights generated for a child",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		childID := session.ChildID(args[0])

		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			list, err := st.InsightStore().Read(ctx, childID, limit)
			if err != nil {
				return fmt.Errorf("load insights: %w", err)
			}
			if len(list) == 0 {
				fmt.Printf("No insights yet for %q. They appear as practice accumulates.\n", args[0])
				return nil
			}

			for _, ins := range list {
				fmt.Printf("%s  [%s/%s]  %s\n",
					ins.GeneratedAt.Local().Format("2006-01-02"),
					ins.Type, ins.Priority, ins.Title)
				fmt.Printf("    %s\n", ins.Message)
				for _, step := range ins.ActionableSteps {
					fmt.Printf("    • %s\n", step)
				}
				fmt.Println(strings.Repeat("─", 64))
			}
			return nil
		})
	},
}

func init() {
	insightsCmd.Flags().IntP("limit", "n", 10, "Number of insights to show (0 for all)")
}
