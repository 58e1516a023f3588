package toolperm

import "testing"

func TestParse(t *testing.T) {
	p := New()

	tests := []struct {
		name    string
		input   string
		want    []Permission
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  []Permission{},
		},
		{
			name:  "plain tools",
			input: "Read Write",
			want:  []Permission{{Name: "Read"}, {Name: "Write"}},
		},
		{
			name:  "scoped tool",
			input: "Bash(git:*)",
			want:  []Permission{{Name: "Bash", Scope: "git:*"}},
		},
		{
			name:  "mixed",
			input: "Read Bash(gh:*) WebFetch",
			want: []Permission{
				{Name: "Read"},
				{Name: "Bash", Scope: "gh:*"},
				{Name: "WebFetch"},
			},
		},
		{
			name:    "lowercase tool name",
			input:   "read",
			wantErr: true,
		},
		{
			name:    "unclosed scope",
			input:   "Bash(git:*",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("perm[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	p := New()
	input := "Read Bash(git:*) WebFetch"

	perms, err := p.Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := p.Format(perms); got != input {
		t.Errorf("Format = %q, want %q", got, input)
	}
}
