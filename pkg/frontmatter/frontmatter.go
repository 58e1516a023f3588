// Package frontmatter parses and renders the YAML frontmatter blocks used by
// skill bundles (SKILL.md files).
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for frontmatter parsing.
var (
	// ErrNoFrontmatter is returned by MustParse when the content does not
	// open with a "---" delimiter.
	ErrNoFrontmatter = errors.New("missing frontmatter")

	// ErrUnclosedFrontmatter is returned when an opening delimiter is never
	// matched by a closing "---" line.
	ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")
)

// Parse extracts YAML frontmatter and body content from a reader.
// When no frontmatter block is present the full content is returned as the
// body and matter is left untouched. Use this for files where frontmatter is
// optional.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but fails with ErrNoFrontmatter when the block is
// absent. Skill bundles require frontmatter, so skill parsing goes through
// this entry point.
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		if required {
			return nil, ErrNoFrontmatter
		}
		return content, nil
	}

	// Skip the opening delimiter, tolerating CRLF.
	offset := 3
	if len(content) > offset && content[offset] == '\r' {
		offset++
	}
	if len(content) > offset && content[offset] == '\n' {
		offset++
	}

	// The closing delimiter is a "---" at the start of a line.
	parts := bytes.SplitN(content[offset:], []byte("\n---"), 2)
	if len(parts) < 2 {
		parts = bytes.SplitN(content[offset:], []byte("\r\n---"), 2)
	}
	if len(parts) < 2 {
		if required {
			return nil, ErrUnclosedFrontmatter
		}
		return content, nil
	}

	block, body := parts[0], parts[1]

	// Drop the newline left over from the split.
	if len(body) > 0 && body[0] == '\r' {
		body = body[1:]
	}
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}

	if err := yaml.Unmarshal(block, matter); err != nil {
		return nil, err
	}

	return body, nil
}

// ParseHeader reads only the frontmatter block, stopping at the closing
// delimiter without consuming the body. Listing commands use this to avoid
// reading full instruction bodies. A file without frontmatter is a silent
// success; matter stays empty.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return scanner.Err()
}

// Format renders matter as a YAML frontmatter block followed by body.
// The body is separated from the closing delimiter by a blank line and is
// guaranteed to end with a newline.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
