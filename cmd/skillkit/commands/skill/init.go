package skill

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
	skillvalidator "github.com/skillkit-dev/skillkit/internal/skill/validator"
	"github.com/skillkit-dev/skillkit/pkg/fileutil"
	"github.com/skillkit-dev/skillkit/pkg/frontmatter"
)

var (
	initName         string
	initDescription  string
	initLicense      string
	initAllowedTools string
	initYes          bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "skill name")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "skill description")
	initCmd.Flags().StringVar(&initLicense, "license", "", "license (e.g. MIT)")
	initCmd.Flags().StringVar(&initAllowedTools, "allowed-tools", "",
		"space-separated allowed tools (e.g. \"Read Bash(git:*)\")")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false,
		"non-interactive mode, accept defaults for unset fields")
	Cmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new skill bundle",
	Long: `Create a new skill directory with a scaffolded SKILL.md file.

If [path] is provided, the bundle is created there; otherwise a directory
named after the skill is created in the working directory. Fields not
supplied via flags are prompted for, unless --yes is set.

Existing SKILL.md files are never overwritten.`,
	Example: `  # Interactive creation
  skillkit skill init

  # Non-interactive creation
  skillkit skill init ./skills/pr-triage --name pr-triage \
    --description "Triage pull request feedback" --yes

  See Also:
    skillkit skill validate - Validate a skill
    skillkit skill edit     - Edit a skill`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	defaultName := "my-skill"
	if len(args) > 0 {
		defaultName = filepath.Base(args[0])
	}

	name := initName
	if name == "" {
		name = promptValue(out, scanner, "Skill Name", defaultName)
	}

	s := &skillpkg.Skill{
		Name:         name,
		Description:  initDescription,
		License:      initLicense,
		AllowedTools: initAllowedTools,
	}
	if s.Description == "" {
		s.Description = promptValue(out, scanner, "Description", "Describe when this skill applies")
	}
	if s.License == "" && !initYes {
		s.License = promptValue(out, scanner, "License", "")
	}

	if result := skillvalidator.New().Validate(s); result.HasErrors() {
		for _, issue := range result.Errors() {
			fmt.Fprintf(out, "Error: %s\n", issue.Error())
		}
		return errValidationFailed
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	} else {
		dir = name
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "resolving path")
	}

	target := filepath.Join(absDir, skillpkg.FileName)
	if _, err := os.Stat(target); err == nil {
		return errors.Newf("refusing to overwrite existing %s", target)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return errors.Wrap(err, "creating skill directory")
	}

	body := fmt.Sprintf("# %s\n\nDescribe the step-by-step instructions here.\n", name)
	data, err := frontmatter.Format(s, body)
	if err != nil {
		return errors.Wrap(err, "formatting skill file")
	}
	if err := fileutil.AtomicWriteFile(target, data, 0o644); err != nil {
		return errors.Wrap(err, "writing skill file")
	}

	fmt.Fprintf(out, "Created %s\n", target)
	return nil
}

// promptValue reads one line from the scanner, returning def on empty input.
func promptValue(out io.Writer, scanner *bufio.Scanner, label, def string) string {
	if initYes {
		return def
	}
	if def != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	if !scanner.Scan() {
		return def
	}
	if v := strings.TrimSpace(scanner.Text()); v != "" {
		return v
	}
	return def
}
