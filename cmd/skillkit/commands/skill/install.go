package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	"github.com/skillkit-dev/skillkit/internal/git"
	"github.com/skillkit-dev/skillkit/internal/paths"
	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/internal/skill/parser"
	skillvalidator "github.com/skillkit-dev/skillkit/internal/skill/validator"
	"github.com/skillkit-dev/skillkit/pkg/fileutil"
)

// cloneDepth keeps install clones shallow; only the working tree matters.
const cloneDepth = 1

var installForce bool

func init() {
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false,
		"replace an existing bundle with the same name")
	Cmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <path|url>",
	Short: "Install a skill bundle into the corpus",
	Long: `Install a skill bundle into the skills directory.

The source can be a local directory containing a SKILL.md file, or a git
URL that is shallow-cloned first. The bundle is validated before it is
copied; an invalid bundle is never installed.`,
	Example: `  # Install from a local directory
  skillkit skill install ./pr-triage

  # Install from a git repository
  skillkit skill install https://github.com/acme/pr-triage-skill.git

  See Also:
    skillkit skill validate - Validate a skill
    skillkit skill list     - List skills`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	source := args[0]
	out := cmd.OutOrStdout()

	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	srcDir := source
	if git.IsURL(source) {
		var cleanup func()
		srcDir, cleanup, err = cloneToCache(source)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	skillFile := filepath.Join(srcDir, skillpkg.FileName)
	s, err := parser.New().ParseFile(skillFile)
	if err != nil {
		return err
	}

	v := skillvalidator.New(skillvalidator.WithStrict(true))
	if result := v.Validate(s); result.HasErrors() {
		fmt.Fprintf(out, "[FAIL] Skill %q failed validation\n", s.Name)
		for _, issue := range result.Errors() {
			fmt.Fprintf(out, "  - %s\n", issue.Error())
		}
		return errValidationFailed
	}

	target := filepath.Join(corpus.SkillsDir, s.Name)
	if _, err := os.Stat(target); err == nil {
		if !installForce {
			return errors.Newf("skill %q already installed at %s (use --force to replace)",
				s.Name, target)
		}
		if err := os.RemoveAll(target); err != nil {
			return errors.Wrap(err, "removing existing bundle")
		}
	}

	if err := paths.EnsureDir(corpus.SkillsDir, 0o755); err != nil {
		return errors.Wrap(err, "creating skills directory")
	}
	if err := fileutil.CopyDir(srcDir, target); err != nil {
		return errors.Wrap(err, "copying bundle")
	}

	fmt.Fprintf(out, "Installed %q to %s\n", s.Name, target)
	return nil
}

// cloneToCache shallow-clones url into a fresh directory under the cache dir
// and returns the bundle directory plus a cleanup func removing the clone.
func cloneToCache(url string) (string, func(), error) {
	if err := paths.EnsureDir(paths.CacheDir(), 0); err != nil {
		return "", nil, errors.Wrap(err, "creating cache directory")
	}

	dest, err := os.MkdirTemp(paths.CacheDir(), "install-*")
	if err != nil {
		return "", nil, errors.Wrap(err, "creating clone directory")
	}
	cleanup := func() { os.RemoveAll(dest) }

	// git clone wants a nonexistent or empty target.
	cloneDir := filepath.Join(dest, "repo")
	if err := git.Clone(url, cloneDir, cloneDepth); err != nil {
		cleanup()
		return "", nil, err
	}

	// Bundles may live at the repo root or in a directory named after the
	// repo; root wins when both hold a SKILL.md.
	if _, err := os.Stat(filepath.Join(cloneDir, skillpkg.FileName)); err == nil {
		return cloneDir, cleanup, nil
	}

	base := strings.TrimSuffix(filepath.Base(url), ".git")
	nested := filepath.Join(cloneDir, base)
	if _, err := os.Stat(filepath.Join(nested, skillpkg.FileName)); err == nil {
		return nested, cleanup, nil
	}

	cleanup()
	return "", nil, errors.Newf("no %s found in %s", skillpkg.FileName, url)
}
