package gomatch

import (
	"github.com/twinfer/gomatch/internal/matcher"
)

// Matcher is a compiled pattern. It gives the same answers as the package
// level functions without backtracking, at O(len(pattern)*len(text)) cost.
//
// A Matcher is safe for concurrent use by multiple goroutines.
type Matcher struct {
	pattern string
	bytes   *matcher.Program[byte]
	runes   *matcher.Program[rune]
}

// Compile compiles pattern. Every string is a valid pattern, so Compile
// cannot fail.
func Compile(pattern string) *Matcher {
	return &Matcher{
		pattern: pattern,
		bytes:   matcher.Compile([]byte(pattern)),
		runes:   matcher.Compile([]rune(pattern)),
	}
}

// Search reports whether the pattern matches anywhere in text, byte-wise
// like the Search function.
func (m *Matcher) Search(text string) bool {
	return m.bytes.Search([]byte(text))
}

// SearchBytes is the byte slice equivalent of Search.
func (m *Matcher) SearchBytes(text []byte) bool {
	return m.bytes.Search(text)
}

// SearchByRune reports whether the pattern matches anywhere in text,
// rune-wise like the SearchByRune function.
func (m *Matcher) SearchByRune(text string) bool {
	return m.runes.Search([]rune(text))
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.pattern
}
