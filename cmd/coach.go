package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/coach"
	"github.com/abhisek/numbond/internal/llm"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
)

var coachCmd = &cobra.Command{
	Use:   "coach <child>",
	Short: "Print a parent coaching summary",
	Long: `Summarize a child's recent practice for a parent, with specific
wins, focus areas, and offline activities.

Uses a configured LLM provider when NUMBOND_*_API_KEY (or a standard
provider key) is set; otherwise falls back to an offline template.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		childID := session.ChildID(args[0])
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			return runCoach(ctx, st, childID)
		})
	},
}

func runCoach(ctx context.Context, st *store.Store, childID string) error {
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
	recent, err := st.InsightStore().Read(ctx, childID, 5)
	if err != nil {
		return fmt.Errorf("load insights: %w", err)
	}

	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err = llm.NewProvider(ctx, cfg, st.Events())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
			provider = nil
		}
	}

	svc := coach.NewService(provider)
	summary := svc.Summarize(ctx, coach.Input{
		Name:     profile.Name,
		Metrics:  adapt.Compute(window),
		Report:   adapt.BuildProgress(window, nil),
		Insights: recent,
	})

	fmt.Println(summary.Overview)
	printBullets("Celebrate together:", summary.Celebrate)
	printBullets("Worth some attention:", summary.FocusAreas)
	printBullets("Try at home:", summary.Activities)

	if summary.Generated {
		fmt.Printf("\n(generated by %s)\n", summary.Model)
	} else {
		fmt.Println("\n(offline summary — set an API key for a personalized one)")
	}
	return nil
}

func printBullets(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println("\n" + heading)
	for _, it := range items {
		fmt.Printf("  • %s\n", it)
	}
}
