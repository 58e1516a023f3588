package skill

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/logging"
	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
)

func TestListCommand_Tabular(t *testing.T) {
	listJSON = false
	root := setupCorpus(t, "alpha", "beta")
	flags.SetSkillsDir(root)
	defer flags.SetSkillsDir("")

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)
	listCmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))

	require.NoError(t, listCmd.RunE(listCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "2 skill(s)")
}

func TestListCommand_Empty(t *testing.T) {
	listJSON = false
	flags.SetSkillsDir(t.TempDir())
	defer flags.SetSkillsDir("")

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)
	listCmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))

	require.NoError(t, listCmd.RunE(listCmd, nil))
	assert.Contains(t, buf.String(), "No skills found")
}

func TestListCommand_JSON(t *testing.T) {
	listJSON = true
	defer func() { listJSON = false }()

	root := setupCorpus(t, "gamma")
	flags.SetSkillsDir(root)
	defer flags.SetSkillsDir("")

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)
	listCmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))

	require.NoError(t, listCmd.RunE(listCmd, nil))

	var infos []skillpkg.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "gamma", infos[0].Name)
	assert.Equal(t, "The gamma skill.", infos[0].Description)
}

func TestListCommand_JSONEmptyIsArray(t *testing.T) {
	listJSON = true
	defer func() { listJSON = false }()

	flags.SetSkillsDir(t.TempDir())
	defer flags.SetSkillsDir("")

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)
	listCmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))

	require.NoError(t, listCmd.RunE(listCmd, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "long st...", truncate("long string here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
