package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupSkillWithContent creates a bundle directory named name under a fresh
// temp dir, writes content as its SKILL.md, and returns the bundle path.
func setupSkillWithContent(t *testing.T, name, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	return dir
}

// setupValidSkill creates a minimal valid bundle and returns its path.
func setupValidSkill(t *testing.T, name string) string {
	t.Helper()
	return setupSkillWithContent(t, name, `---
name: `+name+`
description: A test skill.
---

# Instructions

Do the thing.
`)
}

// setupCorpus creates a corpus root containing the given valid skills and
// returns the root path.
func setupCorpus(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		content := "---\nname: " + name + "\ndescription: The " + name + " skill.\n---\n\nBody.\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	}
	return root
}
