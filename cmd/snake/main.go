// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play a game (same as snake play)
//	snake play               - Play a game
//	snake serve              - Start SSH server for remote play
//	snake version            - Print version information
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write a debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer a growing snake around a walled board, eat cookies and
avoid the walls and your own body.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  version  - Print version information

Examples:
  snake
  snake play --seed 42
  snake --config ./my-snake.yaml
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
