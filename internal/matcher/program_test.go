package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestCompile(t *testing.T) {
	type b = inst[byte]
	cases := []struct {
		pattern  string
		anchored bool
		insts    []b
	}{
		{"", false, nil},
		{"^", true, nil},
		{"abc", false, []b{{opAtom, 'a'}, {opAtom, 'b'}, {opAtom, 'c'}}},
		{"^a.c$", true, []b{{opAtom, 'a'}, {opAtom, '.'}, {opAtom, 'c'}, {opEnd, '$'}}},
		{"ab?c", false, []b{{opAtom, 'a'}, {opOptional, 'b'}, {opAtom, 'c'}}},
		{"a*b", false, []b{{opRepeat, 'a'}, {opAtom, 'b'}}},
		{".*$", false, []b{{opRepeat, '.'}, {opEnd, '$'}}},
		{"a$b", false, []b{{opAtom, 'a'}, {opAtom, '$'}, {opAtom, 'b'}}},
		{"$*", false, []b{{opRepeat, '$'}}},
		{"?", false, []b{{opAtom, '?'}}},
		{"*a", false, []b{{opAtom, '*'}, {opAtom, 'a'}}},
		{"a**", false, []b{{opRepeat, 'a'}, {opAtom, '*'}}},
		{"??", false, []b{{opOptional, '?'}}},
		{"a^", false, []b{{opAtom, 'a'}, {opAtom, '^'}}},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			prog := Compile([]byte(tc.pattern))
			assert.Equal(t, prog.Anchored(), tc.anchored)
			assert.Equal(t, prog.Len(), len(tc.insts))
			assert.DeepEqual(t, prog.insts, tc.insts,
				cmp.AllowUnexported(inst[byte]{}))
		})
	}
}

func TestProgramString(t *testing.T) {
	prog := Compile([]rune("^a?é*$"))
	want := "anchored\n" +
		"0: optional 'a'\n" +
		"1: repeat 'é'\n" +
		"2: end '$'\n"
	assert.Equal(t, prog.String(), want)
}

func TestProgramSearch(t *testing.T) {
	cases := []struct {
		pattern string
		s       string
		result  bool
	}{
		{"^abc", "abc", true},
		{"^abcd", "abcd", true},
		{"^abc", "xabc", false},
		{"bc", "abcd", true},
		{"a*", "", true},
		{"a*", "aaaaaa", true},
		{"a*b", "aaaaaab", true},
		{"a*b", "aaaaaac", false},
		{"", "", true},
		{"", "abc", true},
		{"$", "abc", false},
		{"$", "a$", true},
		{"c$", "abc", true},
		{"a?$", "b", false},
		{"^a.c", "ac", false},
		{"^ab?c", "abbc", false},
	}

	for _, tc := range cases {
		if got := Compile([]byte(tc.pattern)).Search([]byte(tc.s)); got != tc.result {
			t.Errorf("Compile(%q).Search(%q) = %v, want %v", tc.pattern, tc.s, got, tc.result)
		}
	}
}

// TestProgramAgreesWithSearch checks the compiled engine against the
// backtracking one over every short pattern and text, malformed patterns
// included.
func TestProgramAgreesWithSearch(t *testing.T) {
	texts := patterns("ab$?*^", 3)
	for _, p := range patterns("ab.?*^$", 4) {
		prog := Compile([]byte(p))
		for _, s := range texts {
			want := Search([]byte(p), []byte(s))
			if got := prog.Search([]byte(s)); got != want {
				t.Fatalf("Compile(%q).Search(%q) = %v, Search = %v\n%s", p, s, got, want, prog)
			}
		}
	}
}

func TestProgramPathological(t *testing.T) {
	// Exponential for the backtracking engine, linear per offset here.
	pattern := []byte("^a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?a?aaaaaaaaaaaaaaaaaaaaaaaaa$")
	text := []byte("aaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.Assert(t, Compile(pattern).Search(text))
}
