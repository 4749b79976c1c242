// slopetap is a terminal rhythm-skiing arcade game. Alternate left/right pole
// pushes in rhythm to build speed, jump fallen skiers and duck under bridges.
//
// Usage:
//
//	slopetap play            - Play in the current terminal
//	slopetap scores          - Show the leaderboard
//	slopetap serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible courses
//	--db <path>     - Set database path (default: ~/.slopetap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slopetap",
	Short: "Slopetap - rhythm skiing in your terminal",
	Long: `Slopetap is a terminal arcade game: ski down an endless slope, building
speed by alternating left and right pole pushes in a steady rhythm.
Jump over fallen skiers, duck under low bridges, and climb the leaderboard.

Available commands:
  play     - Play in the current terminal
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  slopetap play
  slopetap play --difficulty hard
  slopetap serve --ssh :2222
  slopetap scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slopetap/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
