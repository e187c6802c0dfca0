package slug

import (
	"regexp"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Claude Tool", "claude-tool"},
		{"special characters stripped", "C++ & Rust: a guide!", "c-rust-a-guide"},
		{"underscores collapse", "my__cool__tool", "my-cool-tool"},
		{"mixed separator runs", "a -_ b", "a-b"},
		{"leading and trailing separators", "  --hello--  ", "hello"},
		{"already a slug", "data-integration-hub", "data-integration-hub"},
		{"digits kept", "GPT 4o Tools", "gpt-4o-tools"},
		{"empty", "", ""},
		{"only special characters", "!@#$%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.in)
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Claude Tool", "a -_ b", "Ünïcode Name", "API Testing Suite 2.0"}
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	for _, in := range inputs {
		once := Make(in)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make not idempotent for %q: %q != %q", in, once, twice)
		}
		if !valid.MatchString(once) {
			t.Errorf("Make(%q) = %q contains invalid characters", in, once)
		}
		if len(once) > 0 && (once[0] == '-' || once[len(once)-1] == '-') {
			t.Errorf("Make(%q) = %q has edge hyphen", in, once)
		}
	}
}
