package skill

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	"github.com/skillkit-dev/skillkit/internal/editor"
	"github.com/skillkit-dev/skillkit/internal/logging"
)

func init() {
	Cmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <name|path>",
	Short: "Open a skill bundle in $EDITOR",
	Long: `Open the directory containing the skill in your default editor.

You can provide either:
  - The name of a skill in the corpus (e.g. "pr-triage")
  - A path to a local skill directory (e.g. "./pr-triage" or ".")

Uses the $EDITOR environment variable, then $VISUAL, then nano or vi.`,
	Example: `  # Open a corpus skill
  skillkit skill edit pr-triage

  # Open a local skill directory
  skillkit skill edit ./my-new-skill

  See Also:
    skillkit skill show  - Show skill details
    skillkit skill list  - List skills`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	target := args[0]
	out := cmd.OutOrStdout()

	// A local path wins over a corpus name.
	if info, err := os.Stat(target); err == nil {
		path := target
		if !info.IsDir() {
			path = filepath.Dir(target)
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrap(err, "getting absolute path")
		}

		fmt.Fprintf(out, "Opening local skill at %s...\n", absPath)
		return errors.Wrap(editor.Open(absPath), "opening editor")
	}

	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	found, err := corpus.Lookup(logging.FromContext(cmd.Context()), target)
	if err != nil {
		return err
	}
	if found == nil {
		return errors.Newf("skill %q not found (checked local path and corpus)", target)
	}

	fmt.Fprintf(out, "Opening skill %q...\n", found.Name)
	return errors.Wrap(editor.Open(found.Dir), "opening editor")
}
