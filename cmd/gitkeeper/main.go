// Command gitkeeper is the interactive terminal UI for operating a git
// repository: a commit graph view, a staging/commit workflow, a
// branches/worktrees/stashes view and a three-level merge conflict
// resolver, all driven by the package bubbletea program under internal/tui.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
