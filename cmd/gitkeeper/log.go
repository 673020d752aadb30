package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polysim/gitkeeper/internal/vcs"
	"github.com/polysim/gitkeeper/internal/vcs/gitcli"
)

var logCount int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the most recent commits and exit",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logCount, "count", "n", 20, "number of commits to print")
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	repo, err := gitcli.Open(ctx, repoPath)
	if err != nil {
		return err
	}

	commits, err := repo.Log(ctx, logCount)
	if err != nil {
		return err
	}

	for _, c := range commits {
		fmt.Println(formatLogLine(c))
	}
	return nil
}

// formatLogLine renders one commit as "<short_hash> <subject> — <author>
// (<YYYY-MM-DD HH:MM>)" for the `log` subcommand's plain-text output.
func formatLogLine(c vcs.Commit) string {
	subject := c.Message
	if i := strings.IndexByte(subject, '\n'); i >= 0 {
		subject = subject[:i]
	}
	return fmt.Sprintf("%s %s — %s (%s)",
		c.ID.Short(), subject, c.Author, c.Timestamp.Format("2006-01-02 15:04"))
}
