// Package cli provides CLI-specific helpers shared by the skillkit
// commands, chiefly corpus resolution from flags and configuration.
package cli

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/skillkit-dev/skillkit/internal/config"
	"github.com/skillkit-dev/skillkit/internal/manifest"
	"github.com/skillkit-dev/skillkit/internal/paths"
	"github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/internal/skill/scanner"
)

// Corpus is a resolved skill corpus: the skills directory, its optional
// manifest, and the full list of scan roots.
type Corpus struct {
	// SkillsDir is the resolved primary corpus directory.
	SkillsDir string

	// Manifest is the parsed skillset.toml, or nil when the corpus has none.
	Manifest *manifest.Manifest

	// Roots are the directories scanned for bundles: SkillsDir plus any
	// manifest extra roots.
	Roots []string
}

// ResolveCorpus resolves the corpus for a command invocation. The flag value
// wins over the configured skills_dir; both fall back to ./skills. A missing
// manifest is not an error.
func ResolveCorpus(flagDir string) (*Corpus, error) {
	dir := flagDir
	if dir == "" {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		dir = cfg.SkillsDir
	}

	skillsDir, err := paths.SkillsDir(dir)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(paths.ManifestPath(skillsDir))
	if err != nil && !errors.Is(err, manifest.ErrNotFound) {
		return nil, err
	}

	return &Corpus{
		SkillsDir: skillsDir,
		Manifest:  m,
		Roots:     m.Roots(skillsDir),
	}, nil
}

// Scan lists every bundle across the corpus roots, sorted by name.
func (c *Corpus) Scan(logger *slog.Logger) ([]skill.Info, error) {
	return scanner.New(logger).ScanAll(c.Roots)
}

// Lookup finds a bundle by name. A nil result with a nil error means the
// corpus has no such skill.
func (c *Corpus) Lookup(logger *slog.Logger, name string) (*skill.Info, error) {
	return scanner.New(logger).Lookup(c.Roots, name)
}
