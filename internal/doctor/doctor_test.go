package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCheck(t *testing.T) {
	withToken := &TokenCheck{Lookup: func() string { return "tok" }}
	assert.Equal(t, SeverityPass, withToken.Run().Status)

	withoutToken := &TokenCheck{Lookup: func() string { return "" }}
	result := withoutToken.Run()
	assert.Equal(t, SeverityWarning, result.Status)
	assert.NotEmpty(t, result.FixHint)
}

func TestSkillsDirCheck(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, SeverityPass, (&SkillsDirCheck{Dir: dir}).Run().Status)

	missing := filepath.Join(dir, "nope")
	assert.Equal(t, SeverityWarning, (&SkillsDirCheck{Dir: missing}).Run().Status)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Equal(t, SeverityError, (&SkillsDirCheck{Dir: file}).Run().Status)
}

func TestManifestCheck(t *testing.T) {
	dir := t.TempDir()

	// No manifest is informational, not a failure.
	assert.Equal(t, SeverityInfo, (&ManifestCheck{SkillsDir: dir}).Run().Status)

	// Pinned skill missing from disk.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skillset.toml"), []byte(
		"[registry]\nname = \"corpus\"\npinned = [\"pr-triage\"]\n",
	), 0o644))
	assert.Equal(t, SeverityError, (&ManifestCheck{SkillsDir: dir}).Run().Status)

	// Pinned skill present.
	bundle := filepath.Join(dir, "pr-triage")
	require.NoError(t, os.MkdirAll(bundle, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "SKILL.md"), []byte(
		"---\nname: pr-triage\ndescription: Triage.\n---\n",
	), 0o644))
	assert.Equal(t, SeverityPass, (&ManifestCheck{SkillsDir: dir}).Run().Status)

	// Broken manifest.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skillset.toml"), []byte("[registry"), 0o644))
	assert.Equal(t, SeverityError, (&ManifestCheck{SkillsDir: dir}).Run().Status)
}

func TestGitRepoCheck(t *testing.T) {
	dir := t.TempDir()
	result := (&GitRepoCheck{Dir: dir}).Run()
	assert.Equal(t, SeverityInfo, result.Status)
}

func TestRunAllAndSummarize(t *testing.T) {
	dir := t.TempDir()
	checks := []Check{
		&TokenCheck{Lookup: func() string { return "tok" }},
		&SkillsDirCheck{Dir: dir},
		&ManifestCheck{SkillsDir: dir},
	}

	results := RunAll(checks)
	require.Len(t, results, 3)

	summary := Summarize(results)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Info)
	assert.Zero(t, summary.Errors)
}
