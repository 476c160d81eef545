package note

import "testing"

func TestTitle(t *testing.T) {
	tests := map[string]struct {
		content string
		want    string
	}{
		"short":         {"Buy milk", "Buy milk"},
		"exactly 30":    {"123456789012345678901234567890", "123456789012345678901234567890"},
		"31 chars":      {"1234567890123456789012345678901", "123456789012345678901234567890..."},
		"40 chars":      {"abcdefghijklmnopqrstuvwxyz1234567890ABCD", "abcdefghijklmnopqrstuvwxyz1234..."},
		"multibyte":     {"Съешь же ещё этих мягких французских булок", "Съешь же ещё этих мягких франц..."},
		"keeps spacing": {"  padded  ", "  padded  "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Title(tt.content); got != tt.want {
				t.Fatalf("Test Title: Should have received %q: %q", tt.want, got)
			}
		})
	}
}
