// Package review implements the review noun commands, chiefly fetching the
// unresolved bot review comments of a pull request as JSON.
package review

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for all review subcommands.
var Cmd = &cobra.Command{
	Use:   "review",
	Short: "Work with pull request review comments",
	Long: `Work with GitHub pull request review comments.

The fetch subcommand emits the unresolved review comments left by a bot
reviewer as a JSON array on stdout, for consumption by agent skills.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
