/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package matcher

// Search reports whether pattern matches anywhere in text.
//
// A leading `^` strips the anchor and tries the rest of the pattern at offset
// 0 only. Otherwise MatchHere is tried at every offset of text, left to
// right, and an empty text gets a single attempt so that patterns like `a*`
// can match it.
func Search[E Symbol](pattern, text []E) bool {
	if len(pattern) > 0 && pattern[0] == anchorStart {
		return MatchHere(pattern[1:], text)
	}

	if len(text) == 0 {
		return MatchHere(pattern, text)
	}

	for i := range text {
		if MatchHere(pattern, text[i:]) {
			return true
		}
	}
	return false
}
