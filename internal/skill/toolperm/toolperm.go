// Package toolperm parses the tool permission syntax used in a skill's
// allowed-tools frontmatter field.
package toolperm

import (
	"regexp"
	"strings"
)

// Permission represents a parsed tool permission.
type Permission struct {
	// Name is the tool name (e.g. "Read", "Bash", "WebFetch").
	Name string

	// Scope is the optional scope specification, e.g. "git:*" from
	// "Bash(git:*)". Empty when no scope is given.
	Scope string
}

// String returns the permission in its canonical form.
func (p Permission) String() string {
	if p.Scope == "" {
		return p.Name
	}
	return p.Name + "(" + p.Scope + ")"
}

// toolRegex matches "ToolName" or "ToolName(scope)". Tool names are
// PascalCase: an uppercase letter followed by alphanumerics.
var toolRegex = regexp.MustCompile(`^([A-Z][a-zA-Z0-9]*)(?:\(([^)]+)\))?$`)

// Parser handles tool permission string parsing.
type Parser struct{}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// Parse parses a space-delimited allowed-tools string into individual
// permissions. Empty input yields an empty slice.
func (p *Parser) Parse(allowedTools string) ([]Permission, error) {
	allowedTools = strings.TrimSpace(allowedTools)
	if allowedTools == "" {
		return []Permission{}, nil
	}

	tokens := strings.Fields(allowedTools)
	perms := make([]Permission, 0, len(tokens))

	for _, token := range tokens {
		perm, err := p.ParseSingle(token)
		if err != nil {
			return nil, err
		}
		perms = append(perms, perm)
	}

	return perms, nil
}

// ParseSingle parses a single tool permission token.
func (p *Parser) ParseSingle(token string) (Permission, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Permission{}, &ToolPermError{Token: token, Message: "empty tool permission"}
	}

	matches := toolRegex.FindStringSubmatch(token)
	if matches == nil {
		return Permission{}, &ToolPermError{
			Token:   token,
			Message: "tool name must be PascalCase (e.g. Read, Write, Bash)",
		}
	}

	return Permission{Name: matches[1], Scope: matches[2]}, nil
}

// Format converts permissions back to a space-delimited string.
func (p *Parser) Format(perms []Permission) string {
	if len(perms) == 0 {
		return ""
	}

	parts := make([]string, len(perms))
	for i, perm := range perms {
		parts[i] = perm.String()
	}
	return strings.Join(parts, " ")
}
