package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

type testMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantBody string
		wantErr  bool
	}{
		{
			name:     "frontmatter and body",
			input:    "---\nname: fetch-comments\ndescription: fetches things\n---\n\nInstructions here.\n",
			wantName: "fetch-comments",
			wantBody: "Instructions here.\n",
		},
		{
			name:     "no frontmatter returns full content as body",
			input:    "Just a plain markdown file.\n",
			wantBody: "Just a plain markdown file.\n",
		},
		{
			name:     "crlf line endings",
			input:    "---\r\nname: crlf-skill\r\n---\r\nBody.\r\n",
			wantName: "crlf-skill",
			wantBody: "Body.\r\n",
		},
		{
			name:     "empty body",
			input:    "---\nname: headless\n---\n",
			wantName: "headless",
			wantBody: "",
		},
		{
			name:    "invalid yaml",
			input:   "---\nname: [unterminated\n---\nBody.\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta testMeta
			body, err := Parse(strings.NewReader(tt.input), &meta)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if meta.Name != tt.wantName {
				t.Errorf("name = %q, want %q", meta.Name, tt.wantName)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	var meta testMeta

	_, err := MustParse(strings.NewReader("no frontmatter here\n"), &meta)
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Errorf("err = %v, want ErrNoFrontmatter", err)
	}

	_, err = MustParse(strings.NewReader("---\nname: open-ended\nno closing delimiter\n"), &meta)
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Errorf("err = %v, want ErrUnclosedFrontmatter", err)
	}
}

func TestParseHeader(t *testing.T) {
	var meta testMeta
	input := "---\nname: header-only\ndescription: quick scan\n---\n\nA very long body that should not matter.\n"
	if err := ParseHeader(strings.NewReader(input), &meta); err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if meta.Name != "header-only" {
		t.Errorf("name = %q, want %q", meta.Name, "header-only")
	}
	if meta.Description != "quick scan" {
		t.Errorf("description = %q, want %q", meta.Description, "quick scan")
	}

	// Missing frontmatter is a silent no-op.
	var empty testMeta
	if err := ParseHeader(strings.NewReader("plain file\n"), &empty); err != nil {
		t.Fatalf("ParseHeader on plain file: %v", err)
	}
	if empty.Name != "" {
		t.Errorf("expected empty meta, got name %q", empty.Name)
	}
}

func TestFormat(t *testing.T) {
	meta := testMeta{Name: "round-trip", Description: "formats back out"}
	out, err := Format(meta, "Body text")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var parsed testMeta
	body, err := MustParse(strings.NewReader(string(out)), &parsed)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if parsed != meta {
		t.Errorf("parsed = %+v, want %+v", parsed, meta)
	}
	if strings.TrimSpace(string(body)) != "Body text" {
		t.Errorf("body = %q", body)
	}
}
