// Package scanner discovers skill bundles on disk. A bundle is any
// directory directly under a corpus root that contains a SKILL.md file.
package scanner

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/pkg/frontmatter"
)

// Scanner scans corpus roots for skill bundles.
type Scanner struct {
	logger *slog.Logger
}

// New creates a Scanner that logs warnings to the given logger.
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// headerMeta is the frontmatter subset a listing needs.
type headerMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ScanRoot scans a single corpus root for skill bundles. Unreadable or
// malformed bundles are logged and skipped; only a missing or unreadable
// root itself is an error (a missing root yields an empty result).
func (s *Scanner) ScanRoot(root string) ([]skill.Info, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading skills directory %s", root)
	}

	infos := make([]skill.Info, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		path := filepath.Join(dir, skill.FileName)

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			s.logger.Warn("failed to open skill file", "path", path, "error", err)
			continue
		}

		var meta headerMeta
		err = frontmatter.ParseHeader(f, &meta)
		f.Close()
		if err != nil {
			s.logger.Warn("failed to parse skill frontmatter", "path", path, "error", err)
			continue
		}

		name := meta.Name
		if name == "" {
			name = entry.Name()
		}

		infos = append(infos, skill.Info{
			Name:        name,
			Description: meta.Description,
			Dir:         dir,
		})
	}

	return infos, nil
}

// ScanAll scans multiple corpus roots concurrently and returns the merged
// bundle list sorted by name.
func (s *Scanner) ScanAll(roots []string) ([]skill.Info, error) {
	if len(roots) == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if len(roots) < workers {
		workers = len(roots)
	}

	work := make(chan string, len(roots))
	results := make(chan []skill.Info, len(roots))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for root := range work {
				infos, err := s.ScanRoot(root)
				if err != nil {
					s.logger.Warn("failed to scan skills root", "root", root, "error", err)
					results <- nil
					continue
				}
				results <- infos
			}
		}()
	}

	for _, root := range roots {
		work <- root
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []skill.Info
	for infos := range results {
		all = append(all, infos...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	return all, nil
}

// Lookup finds a single bundle by name across roots.
func (s *Scanner) Lookup(roots []string, name string) (*skill.Info, error) {
	infos, err := s.ScanAll(roots)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		if infos[i].Name == name {
			return &infos[i], nil
		}
	}
	return nil, nil
}
