package skill

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	"github.com/skillkit-dev/skillkit/internal/logging"
	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
)

var (
	searchJSON        bool
	searchInteractive bool
)

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false,
		"pick a skill with a fuzzy finder")
	Cmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search skills in the corpus",
	Long: `Search the corpus for skills whose name or description matches the
query (case-insensitive substring match).

With --interactive, an interactive fuzzy finder is opened over the whole
corpus instead; the query argument is then optional.`,
	Example: `  # Search for skills matching "review"
  skillkit skill search review

  # Output results as JSON
  skillkit skill search review --json

  # Pick interactively
  skillkit skill search -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	infos, err := corpus.Scan(logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}

	if searchInteractive {
		return runInteractiveSearch(cmd.OutOrStdout(), infos)
	}

	if len(args) == 0 {
		return errors.New("query required unless --interactive is set")
	}
	query := args[0]

	matches := filterSkills(infos, query)

	if searchJSON {
		if matches == nil {
			matches = []skillpkg.Info{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(matches), "encoding JSON")
	}

	w := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintf(w, "No skills matching %q\n", query)
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%s\n", m.Name, truncate(m.Description, 70))
	}
	fmt.Fprintf(w, "\nFound %d skill(s) matching %q\n", len(matches), query)
	return nil
}

// filterSkills keeps skills whose name or description contains query,
// case-insensitively.
func filterSkills(infos []skillpkg.Info, query string) []skillpkg.Info {
	q := strings.ToLower(query)
	var matches []skillpkg.Info
	for _, info := range infos {
		if strings.Contains(strings.ToLower(info.Name), q) ||
			strings.Contains(strings.ToLower(info.Description), q) {
			matches = append(matches, info)
		}
	}
	return matches
}
