package report

import "unicode/utf8"

// CountLines counts the lines of text. Any of the line breaks recognised by
// isLineBreak ends a line, "\r\n" counts as a single break and a trailing
// break does not start a new line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	return len(splitLines(text))
}

// PreviewLines returns at most n lines of text, each cut to width characters.
func PreviewLines(text string, n, width int) []string {
	if text == "" || n <= 0 {
		return nil
	}
	lines := splitLines(text)
	if len(lines) > n {
		lines = lines[:n]
	}
	preview := make([]string, len(lines))
	for i, line := range lines {
		preview[i] = TruncateRunes(line, width)
	}
	return preview
}

// TruncateRunes cuts s to at most n characters without splitting a rune.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
