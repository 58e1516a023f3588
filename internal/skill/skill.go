// Package skill defines the skill bundle model: a directory holding a
// SKILL.md file whose YAML frontmatter carries the metadata and whose
// Markdown body carries the instructions.
package skill

// FileName is the required file name of a skill's entry point.
const FileName = "SKILL.md"

// Skill represents a parsed skill bundle.
type Skill struct {
	// Name is the skill identifier: lowercase alphanumeric segments joined
	// by single hyphens, matching the bundle directory name.
	Name string `yaml:"name" json:"name"`

	// Description tells the agent when the skill applies.
	Description string `yaml:"description" json:"description"`

	// License is an optional SPDX identifier.
	License string `yaml:"license,omitempty" json:"license,omitempty"`

	// AllowedTools is an optional space-delimited tool permission list,
	// e.g. "Read Bash(git:*) WebFetch".
	AllowedTools string `yaml:"allowed-tools,omitempty" json:"allowed_tools,omitempty"`

	// Metadata carries free-form extra frontmatter keys.
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	// Instructions is the Markdown body following the frontmatter. Not
	// serialized back into frontmatter.
	Instructions string `yaml:"-" json:"-"`
}

// Info is the lightweight view of a skill used by listings, built from a
// header-only parse.
type Info struct {
	// Name is the skill name, falling back to the directory name when the
	// frontmatter omits it.
	Name string `json:"name"`

	// Description is the skill description.
	Description string `json:"description"`

	// Dir is the bundle directory path.
	Dir string `json:"dir"`
}
