package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slopetap/slopetap/internal/platform/tui"
	"github.com/slopetap/slopetap/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top runs on the leaderboard.

Opens an interactive table when run in a terminal; use --plain for
script-friendly text output.

Examples:
  slopetap scores
  slopetap scores --plain --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (plain output)")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain text table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Slopetap Leaderboard")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'slopetap play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-8s  %-14s  %s\n", "Rank", "Player", "Score", "Dist", "Wiped by", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-8s  %-14s  %s\n", "----", "------", "-----", "----", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-8d  %-7dm  %-14s  %s\n",
			i+1, entry.Player, entry.Score, int(entry.Distance), entry.EndedBy, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d across %d runs\n", stats.HighScore, stats.RunsCount)
	}
}
