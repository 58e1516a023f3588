// Package skill implements the skill noun commands: listing, showing,
// validating, scaffolding, installing, searching, and editing skill
// bundles in the corpus.
package skill

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for all skill subcommands.
var Cmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill bundles in the corpus",
	Long: `Manage skill bundles: directories containing a SKILL.md file with
YAML frontmatter (name, description, optional license and allowed-tools)
followed by Markdown instructions.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
