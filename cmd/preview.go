package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/numbond/internal/bond"
	"github.com/abhisek/numbond/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated problems for a level (no database)",
	Long: `Generate and interactively answer problems at a specific level.

This is a stateless developer tool — no profiles, no attempt logging.
Useful for evaluating problem mix and difficulty tuning.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("level", 1, "Difficulty level (1-4)")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Bool("review", false, "Serve review-table problems")
	previewCmd.Flags().Uint64("seed", 0, "RNG seed (0 uses the clock)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	review, _ := cmd.Flags().GetBool("review")
	seed, _ := cmd.Flags().GetUint64("seed")

	lvl := problemgen.Level(level)
	if lvl != lvl.Clamp() {
		return fmt.Errorf("invalid level %d: must be %d-%d", level, problemgen.MinLevel, problemgen.MaxLevel)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	gen := problemgen.NewSeeded(problemgen.DefaultConfig(), seed)
	scanner := bufio.NewScanner(os.Stdin)

	req := problemgen.Request{Level: lvl}
	if review {
		req.Strategy = problemgen.StrategyReview
	}

	fmt.Printf("Level %d, seed %d\n", lvl, seed)
	fmt.Printf("Generating %d problems...\n\n", count)

	var correct int
	for i := 1; i <= count; i++ {
		p := gen.Generate(req)

		fmt.Printf("── Problem %d/%d (%s) ──\n", i, count, p.Strategy)
		fmt.Println(p.Text())

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Print("(not a number, skipped)\n\n")
			continue
		}

		if bond.CheckAnswer(p, n) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d\n", p.Answer)
		}

		bd := p.CanonicalBreakdown
		if bd.Second > 0 {
			fmt.Printf("Breakdown: %d = %d + %d\n", p.Operand2, bd.First, bd.Second)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
