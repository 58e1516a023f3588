// Package parser reads SKILL.md files: required YAML frontmatter followed
// by the Markdown instruction body.
package parser

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/pkg/frontmatter"
)

// Parser handles SKILL.md parsing operations.
type Parser struct{}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a SKILL.md file from the given path.
func (p *Parser) ParseFile(path string) (*skill.Skill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return p.Parse(f, path)
}

// Parse reads and parses SKILL.md content from a reader. The path parameter
// is used for error context only.
func (p *Parser) Parse(r io.Reader, path string) (*skill.Skill, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return p.ParseBytes(data, path)
}

// ParseBytes parses SKILL.md content from bytes.
func (p *Parser) ParseBytes(data []byte, path string) (*skill.Skill, error) {
	var s skill.Skill
	body, err := frontmatter.MustParse(bytes.NewReader(data), &s)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	s.Instructions = strings.TrimSpace(string(body))
	return &s, nil
}

// ParseHeader parses only the frontmatter metadata, stopping at the closing
// delimiter. Listing commands use this to skip instruction bodies.
func (p *Parser) ParseHeader(path string) (*skill.Skill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	var s skill.Skill
	if err := frontmatter.ParseHeader(f, &s); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &s, nil
}
