package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/numbond/internal/app"
	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
)

// runApp opens the store, builds the session engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine := session.NewEngine(session.Config{
		Generator:    problemgen.NewSeeded(problemgen.DefaultConfig(), uint64(time.Now().UnixNano())),
		Log:          st.AttemptLog(),
		InsightStore: st.InsightStore(),
		Profiles:     st.Profiles(),
	})

	return app.Run(app.Deps{
		Engine:   engine,
		Profiles: st.Profiles(),
	})
}
