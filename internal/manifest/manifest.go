// Package manifest reads the optional skillset.toml manifest at the root of
// a skill corpus. The manifest names the corpus, may add extra scan roots,
// and may pin skills that doctor verifies are present.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Manifest is the parsed skillset.toml.
type Manifest struct {
	Registry Registry `toml:"registry"`

	// ExtraRoots are additional directories to scan for bundles, relative
	// to the manifest location unless absolute.
	ExtraRoots []string `toml:"extra_roots"`

	// Pinned lists skill names that must exist in the corpus.
	Pinned []string `toml:"pinned"`
}

// Registry identifies the corpus.
type Registry struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// ErrNotFound indicates no manifest file exists at the given path.
var ErrNotFound = errors.New("manifest not found")

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest %s", path)
	}

	return &m, nil
}

// Roots returns the full list of scan roots for a corpus: the skills
// directory itself plus any manifest extra roots, resolved against the
// manifest's directory.
func (m *Manifest) Roots(skillsDir string) []string {
	roots := []string{skillsDir}
	if m == nil {
		return roots
	}
	for _, extra := range m.ExtraRoots {
		if extra == "" {
			continue
		}
		if !filepath.IsAbs(extra) {
			extra = filepath.Join(skillsDir, extra)
		}
		roots = append(roots, extra)
	}
	return roots
}

// MissingPins reports pinned skill names absent from the given name set.
func (m *Manifest) MissingPins(present map[string]bool) []string {
	if m == nil {
		return nil
	}
	var missing []string
	for _, name := range m.Pinned {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
