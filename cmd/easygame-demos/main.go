// easygame-demos launches the bundled demo games.
//
// Usage:
//
//	easygame-demos list              - List available demos
//	easygame-demos play <demo>       - Play a demo
//
// Demos: pong, gyruss, clicker, shooter, spacedodge, targets.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rkeys/easygame/demos/clicker"
	"github.com/rkeys/easygame/demos/gyruss"
	"github.com/rkeys/easygame/demos/pong"
	"github.com/rkeys/easygame/demos/shooter"
	"github.com/rkeys/easygame/demos/spacedodge"
	"github.com/rkeys/easygame/demos/targets"
)

type demo struct {
	name  string
	short string
	run   func() error
}

var demos = []demo{
	{"pong", "Paddle game against an AI opponent, first to seven", pong.Run},
	{"gyruss", "Orbit the perimeter and fire inward at spiraling enemies", gyruss.Run},
	{"clicker", "Click targets to score before they move", clicker.Run},
	{"shooter", "WASD movement with mouse-aimed bullets", shooter.Run},
	{"spacedodge", "Dodge falling asteroids for as long as you can", spacedodge.Run},
	{"targets", "Timed rounds of shrinking targets with combos", targets.Run},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

var rootCmd = &cobra.Command{
	Use:   "easygame-demos",
	Short: "Demo games built on the easygame runtime",
	Long: `easygame-demos bundles the example games shipped with easygame.

Examples:
  easygame-demos list
  easygame-demos play pong
  easygame-demos play spacedodge`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(demos))
		for _, d := range demos {
			names = append(names, d.name)
		}
		sort.Strings(names)
		for _, name := range names {
			d, _ := findDemo(name)
			fmt.Printf("  %-12s %s\n", d.name, d.short)
		}
	},
}

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo game",
	Long: `Open a window and play the named demo.

Examples:
  easygame-demos play pong
  easygame-demos play targets`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := findDemo(args[0])
		if !ok {
			return fmt.Errorf("unknown demo %q, run 'easygame-demos list' to see available demos", args[0])
		}
		return d.run()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
