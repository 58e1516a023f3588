// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (skill, review).
package flags

// skillsDir holds the value of the --skills-dir flag.
var skillsDir string

// GetSkillsDir returns the current value of the --skills-dir flag.
// This is used by subcommands to access the flag value.
func GetSkillsDir() string {
	return skillsDir
}

// SetSkillsDir sets the skills-dir flag value. This is used by the root
// command after flag parsing.
func SetSkillsDir(dir string) {
	skillsDir = dir
}
