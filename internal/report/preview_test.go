package report

import (
	"reflect"
	"testing"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "Empty", text: "", expected: 0},
		{name: "Single line no newline", text: "a", expected: 1},
		{name: "Single line with newline", text: "a\n", expected: 1},
		{name: "Two lines", text: "a\nb", expected: 2},
		{name: "CRLF", text: "a\r\nb\r\n", expected: 2},
		{name: "Blank line", text: "\n", expected: 1},
		{name: "Inner blank line", text: "a\n\nb\n", expected: 3},
		{name: "CR only", text: "a\rb\rc", expected: 3},
		{name: "Trailing CR", text: "a\r", expected: 1},
		{name: "Form feed and CR", text: "+a\fb\n+c\rd\n", expected: 4},
		{name: "Vertical tab", text: "a\vb", expected: 2},
		{name: "File group record separators", text: "a\x1cb\x1dc\x1ed", expected: 4},
		{name: "Next line", text: "a\u0085b", expected: 2},
		{name: "Unicode line and paragraph separators", text: "a\u2028b\u2029c\u2029", expected: 3},
		{name: "CR then LF blank line", text: "a\r\n\r\n", expected: 2},
		{name: "LF CR is two breaks", text: "a\n\rb", expected: 3},
		{name: "Tab is not a break", text: "a\tb\n", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLines(tt.text); got != tt.expected {
				t.Errorf("CountLines(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestPreviewLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		width    int
		expected []string
	}{
		{name: "Empty", text: "", n: 5, width: 60, expected: nil},
		{name: "Zero lines", text: "a\nb", n: 0, width: 60, expected: nil},
		{name: "Fewer than n", text: "a\nb\n", n: 5, width: 60, expected: []string{"a", "b"}},
		{name: "Cut to n", text: "1\n2\n3\n4\n5\n6\n7\n", n: 5, width: 60, expected: []string{"1", "2", "3", "4", "5"}},
		{name: "Cut width", text: "abcdef\nxy\n", n: 5, width: 3, expected: []string{"abc", "xy"}},
		{name: "Strips CR", text: "a\r\nb\r\n", n: 5, width: 60, expected: []string{"a", "b"}},
		{name: "CR only", text: "+a\r+b\r", n: 5, width: 60, expected: []string{"+a", "+b"}},
		{name: "Form feed", text: "+x\f+y\n", n: 5, width: 60, expected: []string{"+x", "+y"}},
		{name: "No trailing empty line", text: "old mode 100644\nnew mode 100755\n", n: 5, width: 60, expected: []string{"old mode 100644", "new mode 100755"}},
		{name: "Inner blank line kept", text: "a\n\nb\n", n: 5, width: 60, expected: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviewLines(tt.text, tt.n, tt.width)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PreviewLines(%q, %d, %d) = %q, expected %q", tt.text, tt.n, tt.width, got, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		n        int
		expected string
	}{
		{name: "Short", s: "hello", n: 60, expected: "hello"},
		{name: "Exact", s: "1234567890", n: 10, expected: "1234567890"},
		{name: "Over", s: "1234567890", n: 4, expected: "1234"},
		{name: "Multibyte", s: "héllo wörld", n: 7, expected: "héllo w"},
		{name: "Emoji", s: "✅✅✅", n: 2, expected: "✅✅"},
		{name: "Zero", s: "abc", n: 0, expected: ""},
		{name: "Empty", s: "", n: 5, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.s, tt.n); got != tt.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, expected %q", tt.s, tt.n, got, tt.expected)
			}
		})
	}
}
