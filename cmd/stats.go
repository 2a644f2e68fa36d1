package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <child>",
	Short: "Show a child's recent practice statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		childID := session.ChildID(args[0])
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			return printStats(ctx, st, childID)
		})
	},
}

func printStats(ctx context.Context, st *store.Store, childID string) error {
	profile, err := st.Profiles().Get(ctx, childID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		fmt.Printf("No profile found for %q.\n", string(childID))
		return nil
	}

	window, err := st.AttemptLog().Window(ctx, childID, adapt.WindowSize)
	if err != nil {
		return fmt.Errorf("load attempts: %w", err)
	}
	total, err := st.AttemptLog().Count(ctx, childID)
	if err != nil {
		return fmt.Errorf("count attempts: %w", err)
	}

	m := adapt.Compute(window)
	report := adapt.BuildProgress(window, nil)

	fmt.Printf("%s — level %d", profile.Name, profile.CurrentLevel)
	if profile.ReviewMode {
		fmt.Print("  (review mode)")
	}
	fmt.Println()
	fmt.Println(strings.Repeat("─", 48))

	fmt.Printf("Attempts logged:    %d (last %d analyzed)\n", total, m.Attempts)
	fmt.Printf("Accuracy:           %.0f%%\n", m.Accuracy*100)
	fmt.Printf("Avg time:           %.1fs\n", m.AverageTime)
	fmt.Printf("Hint rate:          %.0f%%\n", m.HintRate*100)
	fmt.Printf("Trend:              %s\n", report.Trend)

	if len(m.PerLevelAccuracy) > 0 {
		fmt.Println()
		fmt.Println("Accuracy by level")
		for lvl := 1; lvl <= 4; lvl++ {
			if acc, ok := m.PerLevelAccuracy[problemgen.Level(lvl)]; ok {
				fmt.Printf("  Level %d:  %.0f%%\n", lvl, acc*100)
			}
		}
	}

	if len(report.Strengths) > 0 {
		fmt.Printf("\nStrong areas:     %s\n", joinCategories(report.Strengths))
	}
	if len(report.Weaknesses) > 0 {
		fmt.Printf("Needs practice:   %s\n", joinCategories(report.Weaknesses))
	}
	return nil
}

func joinCategories[T ~string](cats []T) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = strings.ReplaceAll(string(c), "_", " ")
	}
	return strings.Join(parts, ", ")
}
