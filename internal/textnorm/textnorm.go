// Package textnorm provides query text normalization and the string
// similarity primitives used by scoring and suggestion generation.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	punctRegex  = regexp.MustCompile(`[^\w\s-]`)
	spacesRegex = regexp.MustCompile(`\s+`)
)

// Normalize lowercases s, replaces everything outside word characters,
// whitespace and hyphens with a space, collapses whitespace runs and trims.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctRegex.ReplaceAllString(s, " ")
	s = spacesRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize normalizes s and splits it into whitespace-separated terms.
func Tokenize(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}
