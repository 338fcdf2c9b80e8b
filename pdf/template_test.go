package pdf_test

import (
	"testing"

	"zadachnik/pdf"
)

func TestSubstitute(t *testing.T) {
	fields := map[string]string{
		"name":     "Ann",
		"age":      "30",
		"Название": "Стол",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"double braces", "Hello {{name}}!", "Hello Ann!"},
		{"single braces", "Age: {age}", "Age: 30"},
		{"mixed", "Hello {{name}}, {age}", "Hello Ann, 30"},
		{"unknown key becomes empty", "X{{missing}}Y", "XY"},
		{"cyrillic key", "Товар: {{Название}}", "Товар: Стол"},
		{"css block untouched", "td { padding: 8px; }", "td { padding: 8px; }"},
		{"empty braces untouched", "a {} b {{}} c", "a {} b {{}} c"},
		{"no placeholders", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pdf.Substitute(tt.template, fields); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

// A value containing braces must come through literally: substituted
// text is never re-scanned for placeholders.
func TestSubstituteDoesNotRescanValues(t *testing.T) {
	fields := map[string]string{
		"a": "{{b}}",
		"b": "should never appear",
	}
	if got := pdf.Substitute("{{a}}", fields); got != "{{b}}" {
		t.Errorf("Substitute() = %q, want the literal value {{b}}", got)
	}
}
