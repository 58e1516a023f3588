package doctor

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/skillkit-dev/skillkit/internal/git"
	"github.com/skillkit-dev/skillkit/internal/logging"
	"github.com/skillkit-dev/skillkit/internal/manifest"
	"github.com/skillkit-dev/skillkit/internal/paths"
	"github.com/skillkit-dev/skillkit/internal/skill/scanner"
)

// Check is a single diagnostic.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check.
	Category() string

	// Run executes the check.
	Run() *CheckResult
}

// RunAll executes every check and returns the results in order.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		if r := c.Run(); r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// DefaultChecks returns the standard check set for a corpus rooted at
// skillsDir.
func DefaultChecks(skillsDir string) []Check {
	return []Check{
		&TokenCheck{},
		&GitRepoCheck{Dir: "."},
		&SkillsDirCheck{Dir: skillsDir},
		&ManifestCheck{SkillsDir: skillsDir},
	}
}

// TokenCheck verifies a GitHub token is available for the review commands.
type TokenCheck struct {
	// Lookup overrides the token source in tests.
	Lookup func() string
}

var _ Check = (*TokenCheck)(nil)

func (c *TokenCheck) Name() string     { return "github-token" }
func (c *TokenCheck) Category() string { return "auth" }

func (c *TokenCheck) Run() *CheckResult {
	lookup := c.Lookup
	if lookup == nil {
		lookup = func() string { return os.Getenv("GITHUB_TOKEN") }
	}

	if lookup() == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no GitHub token configured; review fetch will fail",
			FixHint:  "export GITHUB_TOKEN or set SKILLKIT_TOKEN",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "GitHub token is configured",
	}
}

// GitRepoCheck verifies the working directory is inside a git repository
// with a parseable origin remote, which pull-request auto-resolution needs.
type GitRepoCheck struct {
	Dir string
}

var _ Check = (*GitRepoCheck)(nil)

func (c *GitRepoCheck) Name() string     { return "git-repository" }
func (c *GitRepoCheck) Category() string { return "repository" }

func (c *GitRepoCheck) Run() *CheckResult {
	if err := git.ValidateRepository(c.Dir); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "not inside a git repository; review fetch needs --repo and --pr",
		}
	}

	slug, err := git.OriginSlug(c.Dir)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("cannot determine origin remote: %v", err),
			FixHint:  "git remote add origin <url>, or pass --repo",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "git repository with origin " + slug,
		Details:  map[string]any{"repo": slug},
	}
}

// SkillsDirCheck verifies the skills directory exists and is a directory.
type SkillsDirCheck struct {
	Dir string
}

var _ Check = (*SkillsDirCheck)(nil)

func (c *SkillsDirCheck) Name() string     { return "skills-directory" }
func (c *SkillsDirCheck) Category() string { return "corpus" }

func (c *SkillsDirCheck) Run() *CheckResult {
	info, err := os.Stat(c.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityWarning,
				Message:  "skills directory does not exist: " + c.Dir,
				FixHint:  "mkdir -p " + c.Dir + ", or set skills_dir in config",
			}
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot stat skills directory: %v", err),
		}
	}
	if !info.IsDir() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "skills path is not a directory: " + c.Dir,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "skills directory exists",
		Details:  map[string]any{"path": c.Dir},
	}
}

// ManifestCheck parses the corpus manifest, if any, and verifies every
// pinned skill is present on disk.
type ManifestCheck struct {
	SkillsDir string
}

var _ Check = (*ManifestCheck)(nil)

func (c *ManifestCheck) Name() string     { return "manifest" }
func (c *ManifestCheck) Category() string { return "corpus" }

func (c *ManifestCheck) Run() *CheckResult {
	m, err := manifest.Load(paths.ManifestPath(c.SkillsDir))
	if err != nil {
		if errors.Is(err, manifest.ErrNotFound) {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityInfo,
				Message:  "no skillset.toml manifest (optional)",
			}
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("manifest is invalid: %v", err),
		}
	}

	infos, err := scanner.New(logging.NewDiscard()).ScanAll(m.Roots(c.SkillsDir))
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("scanning corpus: %v", err),
		}
	}

	present := make(map[string]bool, len(infos))
	for _, info := range infos {
		present[info.Name] = true
	}

	if missing := m.MissingPins(present); len(missing) > 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("pinned skills missing from corpus: %v", missing),
			Details:  map[string]any{"missing": missing},
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("manifest %q valid, %d skills present", m.Registry.Name, len(infos)),
	}
}
