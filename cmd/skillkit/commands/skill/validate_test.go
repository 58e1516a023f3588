package skill

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetValidateFlags() {
	validateStrict = false
	validateJSON = false
}

func TestValidateCommand_ValidSkill(t *testing.T) {
	resetValidateFlags()
	skillDir := setupValidSkill(t, "test-skill")

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	require.NoError(t, validateCmd.RunE(validateCmd, []string{skillDir}))
	assert.Contains(t, buf.String(), "[OK] Skill 'test-skill' is valid")
}

func TestValidateCommand_MissingName(t *testing.T) {
	resetValidateFlags()
	skillDir := setupSkillWithContent(t, "invalid-skill", `---
description: Missing name field
---
Instructions here.
`)

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	err := validateCmd.RunE(validateCmd, []string{skillDir})
	require.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, buf.String(), "[FAIL]")
}

func TestValidateCommand_NameDirectoryMismatch(t *testing.T) {
	resetValidateFlags()
	skillDir := setupSkillWithContent(t, "dir-name", `---
name: other-name
description: Name does not match directory.
---
Body.
`)

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	err := validateCmd.RunE(validateCmd, []string{skillDir})
	require.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, buf.String(), "directory")
}

func TestValidateCommand_StrictToolSyntax(t *testing.T) {
	resetValidateFlags()
	skillDir := setupSkillWithContent(t, "tooled", `---
name: tooled
description: Has a bad allowed-tools entry.
allowed-tools: "Read bash(git:*)"
---
Body.
`)

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	// Lenient mode ignores tool syntax.
	require.NoError(t, validateCmd.RunE(validateCmd, []string{skillDir}))

	validateStrict = true
	buf.Reset()
	err := validateCmd.RunE(validateCmd, []string{skillDir})
	require.ErrorIs(t, err, errValidationFailed)
}

func TestValidateCommand_JSONOutput(t *testing.T) {
	resetValidateFlags()
	validateJSON = true
	skillDir := setupValidSkill(t, "json-test")

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	require.NoError(t, validateCmd.RunE(validateCmd, []string{skillDir}))

	var result validateResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Valid)
	require.NotNil(t, result.Skill)
	assert.Equal(t, "json-test", result.Skill.Name)
}

func TestValidateCommand_NotFound(t *testing.T) {
	resetValidateFlags()

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	err := validateCmd.RunE(validateCmd, []string{filepath.Join(t.TempDir(), "nonexistent")})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "SKILL.md not found")
}

func TestValidateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "validate <path>", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.NotNil(t, validateCmd.Flags().Lookup("strict"))
	assert.NotNil(t, validateCmd.Flags().Lookup("json"))
}
