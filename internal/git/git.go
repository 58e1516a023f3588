// Package git wraps the git operations skillkit needs: reading the current
// branch and origin remote for pull-request resolution, and cloning skill
// repositories for install.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotRepository indicates the directory is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// IsURL returns true if s looks like a git repository URL: anything with a
// scheme, a ".git" suffix, or an SSH-style "git@" prefix.
func IsURL(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	if strings.HasSuffix(s, ".git") {
		return true
	}
	if strings.HasPrefix(s, "git@") {
		return true
	}
	return false
}

// CurrentBranch returns the checked-out branch name in dir.
func CurrentBranch(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch == "" || branch == "HEAD" {
		return "", errors.New("detached HEAD, cannot determine branch")
	}
	return branch, nil
}

// OriginSlug returns the "owner/name" slug of the origin remote in dir.
// HTTPS, SSH, and git-protocol remote URLs are supported.
func OriginSlug(dir string) (string, error) {
	out, err := output(dir, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	slug, err := ParseSlug(strings.TrimSpace(out))
	if err != nil {
		return "", errors.Wrap(err, "parsing origin remote")
	}
	return slug, nil
}

// ParseSlug extracts "owner/name" from a git remote URL.
func ParseSlug(remote string) (string, error) {
	s := strings.TrimSuffix(remote, ".git")

	switch {
	case strings.Contains(s, "://"):
		// https://github.com/owner/name
		parts := strings.Split(s, "/")
		if len(parts) < 2 {
			return "", errors.Newf("unrecognized remote URL: %s", remote)
		}
		return parts[len(parts)-2] + "/" + parts[len(parts)-1], nil
	case strings.Contains(s, ":"):
		// git@github.com:owner/name
		_, after, _ := strings.Cut(s, ":")
		after = strings.Trim(after, "/")
		if strings.Count(after, "/") != 1 {
			return "", errors.Newf("unrecognized remote URL: %s", remote)
		}
		return after, nil
	default:
		return "", errors.Newf("unrecognized remote URL: %s", remote)
	}
}

// Clone clones a repository from url to dest with the given depth. Output
// streams to the terminal and stdin stays connected so interactive
// authentication (SSH passphrase, credentials) still works.
func Clone(url, dest string, depth int) error {
	cmd := exec.Command("git", "clone", fmt.Sprintf("--depth=%d", depth), url, dest)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// ValidateRepository checks that dir contains a .git directory.
func ValidateRepository(dir string) error {
	gitDir := filepath.Join(dir, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrNotRepository, "%s", dir)
		}
		return errors.Wrap(err, "checking git directory")
	}
	if !info.IsDir() {
		return errors.Newf(".git is not a directory: %s", gitDir)
	}
	return nil
}

func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.Newf("git %s: %s", strings.Join(args, " "),
				strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", errors.Wrapf(err, "git %s", strings.Join(args, " "))
	}
	return string(out), nil
}
