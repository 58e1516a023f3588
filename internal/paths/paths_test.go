package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde alone", "~", home},
		{"tilde prefix", "~/skills", filepath.Join(home, "skills")},
		{"absolute path unchanged", "/opt/skills", "/opt/skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input)
			if err != nil {
				t.Fatalf("Expand(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := Expand(""); err == nil {
		t.Error("Expand(\"\") should fail")
	}
}

func TestSkillsDir(t *testing.T) {
	explicit, err := SkillsDir("/corpus/skills")
	if err != nil {
		t.Fatalf("SkillsDir: %v", err)
	}
	if explicit != "/corpus/skills" {
		t.Errorf("explicit dir = %q", explicit)
	}

	implicit, err := SkillsDir("")
	if err != nil {
		t.Fatalf("SkillsDir: %v", err)
	}
	if filepath.Base(implicit) != DefaultSkillsDirName {
		t.Errorf("implicit dir = %q, want %q suffix", implicit, DefaultSkillsDirName)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "skills")
	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}
	// Second call is a no-op.
	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("EnsureDir twice: %v", err)
	}
}
