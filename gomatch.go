// Package gomatch provides a small pattern matcher for searching text.
//
// Patterns are literal symbols mixed with a handful of tokens:
//
//   - `^`: as the first symbol, anchors the match at the start of the text.
//   - `$`: as the last symbol, anchors the match at the end of the text.
//   - `.`: matches any single symbol.
//   - `?`: the preceding symbol matches zero or one time.
//   - `*`: the preceding symbol matches zero or more times.
//
// Anywhere else `^` and `$` are literals, as are `?` and `*` when nothing
// precedes them. There is no escaping, no alternation and no character
// classes.
//
// The plain functions run a recursive backtracking matcher. Compile builds a
// Matcher that gives the same answers in time linear in the text for each
// starting offset, which suits long texts or patterns from untrusted input.
package gomatch

import (
	"strings"

	"github.com/twinfer/gomatch/internal/matcher"
)

// Search reports whether pattern matches anywhere in text. It operates on
// bytes, so `.` consumes one byte of a multi-byte character. For
// Unicode-aware matching, use SearchByRune.
func Search(pattern, text string) bool {
	return matcher.Search([]byte(pattern), []byte(text))
}

// SearchByRune reports whether pattern matches anywhere in text, treating
// both as sequences of runes: `.` consumes one whole code point and a
// quantifier binds to the whole preceding character.
func SearchByRune(pattern, text string) bool {
	return matcher.Search([]rune(pattern), []rune(text))
}

// SearchBytes is the byte slice equivalent of Search.
func SearchBytes(pattern, text []byte) bool {
	return matcher.Search(pattern, text)
}

// SearchFold reports whether pattern matches anywhere in text, ignoring case.
// Both operands are lower-cased before a byte-wise Search.
func SearchFold(pattern, text string) bool {
	return Search(strings.ToLower(pattern), strings.ToLower(text))
}

// SearchFoldRune combines the case folding of SearchFold with the rune-wise
// matching of SearchByRune.
func SearchFoldRune(pattern, text string) bool {
	return SearchByRune(strings.ToLower(pattern), strings.ToLower(text))
}
