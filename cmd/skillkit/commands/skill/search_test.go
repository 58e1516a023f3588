package skill

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/logging"
	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
)

func TestFilterSkills(t *testing.T) {
	infos := []skillpkg.Info{
		{Name: "pr-triage", Description: "Triage pull request feedback."},
		{Name: "release-notes", Description: "Draft release notes."},
		{Name: "debugging", Description: "Work through failing tests."},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name", "triage", []string{"pr-triage"}},
		{"matches description", "release", []string{"release-notes"}},
		{"case insensitive", "TRIAGE", []string{"pr-triage"}},
		{"multiple matches", "e", []string{"pr-triage", "release-notes", "debugging"}},
		{"no matches", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterSkills(infos, tt.query)
			names := make([]string, 0, len(got))
			for _, g := range got {
				names = append(names, g.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestSearchCommand_TextOutput(t *testing.T) {
	searchJSON = false
	searchInteractive = false

	root := setupCorpus(t, "pr-triage", "release-notes")
	flags.SetSkillsDir(root)
	defer flags.SetSkillsDir("")

	var buf bytes.Buffer
	searchCmd.SetOut(&buf)
	defer searchCmd.SetOut(nil)
	searchCmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))

	require.NoError(t, searchCmd.RunE(searchCmd, []string{"triage"}))

	out := buf.String()
	assert.Contains(t, out, "pr-triage")
	assert.NotContains(t, out, "release-notes")
	assert.Contains(t, out, `Found 1 skill(s) matching "triage"`)
}

func TestSearchCommand_RequiresQuery(t *testing.T) {
	searchJSON = false
	searchInteractive = false

	flags.SetSkillsDir(t.TempDir())
	defer flags.SetSkillsDir("")
	searchCmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))

	err := searchCmd.RunE(searchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query required")
}
