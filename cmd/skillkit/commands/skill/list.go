package skill

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	"github.com/skillkit-dev/skillkit/internal/logging"
	"github.com/skillkit-dev/skillkit/internal/skill"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the corpus",
	Long: `List all skill bundles found in the corpus roots.

The corpus is the skills directory plus any extra roots declared in
skillset.toml. Malformed bundles are skipped with a warning.`,
	Example: `  # List all skills
  skillkit skill list

  # Output as JSON
  skillkit skill list --json

  See Also:
    skillkit skill show     - Show skill details
    skillkit skill install  - Install a new skill`,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	infos, err := corpus.Scan(logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}

	if listJSON {
		return outputListJSON(cmd.OutOrStdout(), infos)
	}
	return outputListTabular(cmd.OutOrStdout(), infos)
}

func outputListJSON(w io.Writer, infos []skill.Info) error {
	if infos == nil {
		infos = []skill.Info{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(infos), "encoding JSON")
}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGray  = "\033[90m"
)

func outputListTabular(w io.Writer, infos []skill.Info) error {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No skills found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME\tDESCRIPTION\tPATH%s\n", colorBold, colorReset)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s%s%s\n",
			info.Name, truncate(info.Description, 60), colorGray, info.Dir, colorReset)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flushing output")
	}

	fmt.Fprintf(w, "\n%d skill(s)\n", len(infos))
	return nil
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
