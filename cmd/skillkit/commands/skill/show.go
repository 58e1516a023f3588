package skill

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	skerrors "github.com/skillkit-dev/skillkit/internal/errors"
	"github.com/skillkit-dev/skillkit/internal/logging"
	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/internal/skill/parser"
)

const defaultInstructionsPreviewLength = 200

var (
	showJSON bool
	showFull bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showFull, "full", false, "Show complete instructions (default truncated)")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Display detailed skill information",
	Long: `Display detailed information about a skill in the corpus.

Shows metadata, allowed tools, the bundle path, and an instructions
preview.`,
	Example: `  # Show details for the 'pr-triage' skill
  skillkit skill show pr-triage

  # Show full instructions
  skillkit skill show pr-triage --full

  # Show details as JSON
  skillkit skill show pr-triage --json

  See Also:
    skillkit skill list  - List skills
    skillkit skill edit  - Edit a skill`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// showDetail holds skill information for display.
type showDetail struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	License      string            `json:"license,omitempty"`
	AllowedTools string            `json:"allowed_tools,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Instructions string            `json:"instructions,omitempty"`
	Dir          string            `json:"dir"`
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	info, err := corpus.Lookup(logging.FromContext(cmd.Context()), name)
	if err != nil {
		return err
	}
	if info == nil {
		return skerrors.NewUserError(
			errors.Wrapf(skerrors.ErrNotFound, "skill %q", name),
			"Run 'skillkit skill list' to see available skills")
	}

	s, err := parser.New().ParseFile(filepath.Join(info.Dir, skillpkg.FileName))
	if err != nil {
		return err
	}

	detail := showDetail{
		Name:         s.Name,
		Description:  s.Description,
		License:      s.License,
		AllowedTools: s.AllowedTools,
		Metadata:     s.Metadata,
		Instructions: s.Instructions,
		Dir:          info.Dir,
	}

	if showJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(detail), "encoding JSON")
	}

	return outputShowText(cmd, detail)
}

func outputShowText(cmd *cobra.Command, detail showDetail) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%s%s%s\n", colorBold, detail.Name, colorReset)
	fmt.Fprintf(w, "  Description:   %s\n", detail.Description)
	if detail.License != "" {
		fmt.Fprintf(w, "  License:       %s\n", detail.License)
	}
	if detail.AllowedTools != "" {
		fmt.Fprintf(w, "  Allowed tools: %s\n", detail.AllowedTools)
	}
	fmt.Fprintf(w, "  Path:          %s\n", detail.Dir)

	if len(detail.Metadata) > 0 {
		fmt.Fprintln(w, "  Metadata:")
		for k, v := range detail.Metadata {
			fmt.Fprintf(w, "    %s: %s\n", k, v)
		}
	}

	if detail.Instructions != "" {
		fmt.Fprintln(w)
		instructions := detail.Instructions
		if !showFull && len(instructions) > defaultInstructionsPreviewLength {
			instructions = strings.TrimSpace(instructions[:defaultInstructionsPreviewLength]) + "..."
			fmt.Fprintf(w, "%sInstructions (truncated, use --full):%s\n", colorGray, colorReset)
		} else {
			fmt.Fprintf(w, "%sInstructions:%s\n", colorGray, colorReset)
		}
		fmt.Fprintln(w, instructions)
	}

	return nil
}
