// Package paths resolves the directories skillkit works with: the XDG
// config home for its own configuration and the skills directory holding
// the corpus.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// DefaultSkillsDirName is the corpus directory name used when no explicit
// skills directory is configured. It is resolved relative to the current
// working directory, matching the layout of a skills repository checkout.
const DefaultSkillsDirName = "skills"

// ManifestFileName is the optional corpus manifest at the skills-dir root.
const ManifestFileName = "skillset.toml"

// DefaultDirPerm is the permission for directories skillkit creates.
const DefaultDirPerm = 0o700

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be
	// determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// ConfigHome returns the base directory for user configuration files,
// following the XDG Base Directory specification.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the skillkit configuration directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "skillkit")
}

// ConfigFile returns the path of the skillkit config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// CacheDir returns the skillkit cache directory, used for shallow clones
// during skill install.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, "skillkit")
}

// SkillsDir resolves the skills directory. An explicit non-empty value wins;
// otherwise the default corpus layout relative to the working directory is
// used.
func SkillsDir(configured string) (string, error) {
	if configured != "" {
		return Expand(configured)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory")
	}
	return filepath.Join(wd, DefaultSkillsDirName), nil
}

// ManifestPath returns the manifest location for a skills directory.
func ManifestPath(skillsDir string) string {
	return filepath.Join(skillsDir, ManifestFileName)
}

// Expand resolves a leading "~" to the user's home directory and returns an
// absolute path.
func Expand(path string) (string, error) {
	if path == "" {
		return "", ErrInvalidPath
	}

	if path == "~" || len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1]) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.WithSecondaryError(ErrHomeDirNotFound, err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidPath, "%s", path)
	}
	return abs, nil
}

// EnsureDir creates the directory and any parents. If perm is 0,
// DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
