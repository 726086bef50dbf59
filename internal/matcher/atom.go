/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package matcher contains the pattern matching engines behind the gomatch
// package: a recursive backtracking matcher, the search loop driving it and a
// compiled state-set engine with the same semantics.
//
// Patterns are made of literal symbols and the tokens:
//
//   - `^`: anchors the match at the start of the text (first pattern symbol only).
//   - `$`: anchors the match at the end of the text (last pattern symbol only).
//   - `.`: matches any single symbol.
//   - `?`: the preceding atom matches zero or one time.
//   - `*`: the preceding atom matches zero or more times.
package matcher

import (
	"errors"
	"fmt"
)

// ErrAtomTooLong reports an atom comparison on more than one symbol. It is a
// programming error inside this package and is raised with panic.
var ErrAtomTooLong = errors.New("matcher: atom longer than one symbol")

// Symbol is the element type of patterns and texts. Byte slices are matched
// byte-wise, rune slices code point by code point.
type Symbol interface {
	~byte | ~rune
}

const (
	anchorStart = '^'
	anchorEnd   = '$'
	wildcardDot = '.'
	quantOpt    = '?'
	quantStar   = '*'
)

// matchOne reports whether the pattern atom p matches the text atom t.
// Both operands hold at most one symbol; an empty p matches anything and an
// empty t matches nothing but an empty p.
func matchOne[E Symbol](p, t []E) bool {
	if len(p) > 1 || len(t) > 1 {
		panic(fmt.Errorf("%w: pattern %d, text %d", ErrAtomTooLong, len(p), len(t)))
	}

	switch {
	case len(p) == 0:
		return true
	case len(t) == 0:
		return false
	case p[0] == wildcardDot:
		return true
	}
	return p[0] == t[0]
}

// splitAt splits s after n symbols. A short s is returned whole with an
// empty remainder.
func splitAt[E Symbol](s []E, n int) ([]E, []E) {
	if len(s) >= n {
		return s[:n], s[n:]
	}
	return s, nil
}
