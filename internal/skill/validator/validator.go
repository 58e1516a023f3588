// Package validator checks Skill structs against the corpus conventions:
// naming rules, required fields, and optionally allowed-tools syntax.
package validator

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/internal/skill/toolperm"
	"github.com/skillkit-dev/skillkit/internal/validator"
)

// maxNameLength is the maximum allowed length for skill names.
const maxNameLength = 64

// nameRegex validates skill names: lowercase alphanumeric segments joined
// by single hyphens, no leading/trailing hyphen, no consecutive hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Option configures a Validator.
type Option func(*Validator)

// Validator validates Skill structs.
type Validator struct {
	toolParser *toolperm.Parser
	strict     bool
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		toolParser: toolperm.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithStrict enables strict mode, which additionally validates the
// allowed-tools syntax.
func WithStrict(strict bool) Option {
	return func(v *Validator) {
		v.strict = strict
	}
}

// Validate checks a skill for compliance and returns the aggregated result.
func (v *Validator) Validate(s *skill.Skill) *validator.Result {
	result := &validator.Result{}

	v.validateName(s.Name, result)
	v.validateDescription(s.Description, result)

	if v.strict && s.AllowedTools != "" {
		if _, err := v.toolParser.Parse(s.AllowedTools); err != nil {
			result.AddError("allowed-tools", err.Error(), s.AllowedTools)
		}
	}

	return result
}

// ValidateWithPath validates a skill and additionally checks that the skill
// name matches the containing directory name. path is the SKILL.md path.
func (v *Validator) ValidateWithPath(s *skill.Skill, path string) *validator.Result {
	result := v.Validate(s)

	if s.Name != "" {
		dir := filepath.Base(filepath.Dir(path))
		if dir != s.Name {
			result.Issues = append(result.Issues, validator.Issue{
				Severity: validator.SeverityError,
				Field:    "name",
				Message:  "skill name must match directory name",
				Value:    s.Name,
				Context: map[string]string{
					"directory": dir,
					"path":      path,
				},
			})
		}
	}

	return result
}

func (v *Validator) validateName(name string, result *validator.Result) {
	if name == "" {
		result.AddError("name", "name is required", nil)
		return
	}

	if len(name) > maxNameLength {
		result.AddError("name", "name exceeds maximum length of 64 characters", name)
	}

	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		switch {
		case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
			msg = "name cannot start or end with a hyphen"
		case strings.Contains(name, "--"):
			msg = "name cannot contain consecutive hyphens"
		case strings.ToLower(name) != name:
			msg = "name must be lowercase"
		}
		result.AddError("name", msg, name)
	}
}

func (v *Validator) validateDescription(description string, result *validator.Result) {
	if description == "" {
		result.AddError("description", "description is required", nil)
		return
	}
	if strings.TrimSpace(description) == "" {
		result.AddError("description", "description cannot be only whitespace", description)
	}
}
