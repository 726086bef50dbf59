/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package matcher

// MatchHere reports whether pattern matches at the very start of text. The
// match succeeds as soon as the whole pattern is consumed, whatever text is
// left; a trailing `$` requires the text to be consumed as well.
//
// A `^` has no special meaning here, see Search. A `$` is the end anchor only
// when it is all that is left of the pattern; with text remaining it is
// compared as a literal. Quantifiers bind to the one symbol before them, so a
// leading `?` or `*` is a literal symbol.
//
// The recursion depth is bounded by len(pattern)+len(text).
func MatchHere[E Symbol](pattern, text []E) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(pattern) == 1 && pattern[0] == anchorEnd && len(text) == 0 {
		return true
	}

	if len(pattern) > 1 {
		switch pattern[1] {
		case quantOpt:
			return matchOptional(pattern, text)
		case quantStar:
			return matchRepeat(pattern, text)
		}
	}

	p, pRest := splitAt(pattern, 1)
	t, tRest := splitAt(text, 1)
	return matchOne(p, t) && MatchHere(pRest, tRest)
}

// matchOptional handles `x?`: take one x and match the rest, or skip x.
func matchOptional[E Symbol](pattern, text []E) bool {
	atom, _ := splitAt(pattern, 1)
	_, rest := splitAt(pattern, 2)
	t, tRest := splitAt(text, 1)

	return (matchOne(atom, t) && MatchHere(rest, tRest)) ||
		MatchHere(rest, text)
}

// matchRepeat handles `x*`: consume one x and stay on the same pattern, or
// stop repeating and match the rest. The first branch always shrinks text.
func matchRepeat[E Symbol](pattern, text []E) bool {
	atom, _ := splitAt(pattern, 1)
	_, rest := splitAt(pattern, 2)
	t, tRest := splitAt(text, 1)

	return (matchOne(atom, t) && MatchHere(pattern, tRest)) ||
		MatchHere(rest, text)
}
