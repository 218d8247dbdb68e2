package numinput

import (
	"strings"
	"unicode/utf8"
)

// Rune-offset helpers. Every caret computation in this package is in runes.

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// runeAt returns the rune at offset i as a string, or "" when out of range.
func runeAt(s string, i int) string {
	if i < 0 {
		return ""
	}
	for _, r := range s {
		if i == 0 {
			return string(r)
		}
		i--
	}
	return ""
}

// runeIndex returns the rune offset of the first sub in s, or -1.
func runeIndex(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}

// runeHead returns the first n runes of s.
func runeHead(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// runeTail returns s without its first n runes.
func runeTail(s string, n int) string {
	return s[len(runeHead(s, n)):]
}

// countSymbol counts occurrences of a non-empty symbol.
func countSymbol(s, symbol string) int {
	if symbol == "" {
		return 0
	}
	return strings.Count(s, symbol)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
