package matcher

import (
	"fmt"
	"strings"
)

// opKind identifies what a compiled instruction consumes.
type opKind uint8

const (
	opAtom     opKind = iota // exactly one symbol
	opOptional               // zero or one symbol
	opRepeat                 // zero or more symbols
	opEnd                    // end of text, or a literal `$`
)

func (k opKind) String() string {
	switch k {
	case opAtom:
		return "atom"
	case opOptional:
		return "optional"
	case opRepeat:
		return "repeat"
	case opEnd:
		return "end"
	}
	return "invalid"
}

// inst is one step of a compiled pattern.
type inst[E Symbol] struct {
	op   opKind
	atom E
}

func (in inst[E]) matches(c E) bool {
	return in.atom == wildcardDot || in.atom == c
}

// Program is a pattern lowered into a flat instruction list. It accepts
// exactly the texts Search accepts but runs as a state-set simulation in
// O(len(pattern)*len(text)) time without recursion.
//
// A Program is immutable and safe for concurrent use.
type Program[E Symbol] struct {
	anchored bool
	insts    []inst[E]
}

// Compile lowers pattern the way MatchHere dispatches on it: a `$` is the end
// instruction only when it is the last symbol, and a symbol followed by `?`
// or `*` becomes a quantified instruction whatever the symbol is.
func Compile[E Symbol](pattern []E) *Program[E] {
	prog := &Program[E]{}
	if len(pattern) > 0 && pattern[0] == anchorStart {
		prog.anchored = true
		pattern = pattern[1:]
	}

	for len(pattern) > 0 {
		switch {
		case len(pattern) == 1 && pattern[0] == anchorEnd:
			prog.insts = append(prog.insts, inst[E]{op: opEnd, atom: anchorEnd})
			pattern = pattern[1:]
		case len(pattern) > 1 && pattern[1] == quantOpt:
			prog.insts = append(prog.insts, inst[E]{op: opOptional, atom: pattern[0]})
			pattern = pattern[2:]
		case len(pattern) > 1 && pattern[1] == quantStar:
			prog.insts = append(prog.insts, inst[E]{op: opRepeat, atom: pattern[0]})
			pattern = pattern[2:]
		default:
			prog.insts = append(prog.insts, inst[E]{op: opAtom, atom: pattern[0]})
			pattern = pattern[1:]
		}
	}
	return prog
}

// Anchored reports whether the program only matches at offset 0.
func (p *Program[E]) Anchored() bool {
	return p.anchored
}

// Len returns the number of instructions.
func (p *Program[E]) Len() int {
	return len(p.insts)
}

// String renders the instruction list, one instruction per line.
func (p *Program[E]) String() string {
	var b strings.Builder
	if p.anchored {
		b.WriteString("anchored\n")
	}
	for pc, in := range p.insts {
		fmt.Fprintf(&b, "%d: %s %q\n", pc, in.op, rune(in.atom))
	}
	return b.String()
}

// Search reports whether the program matches anywhere in text, with the same
// scan rules as the Search function.
//
// State pc means "before instruction pc"; state Len() is the accepting state.
// A fresh thread enters at state 0 on offset 0 and, unless anchored, on every
// later offset short of the end of the text.
func (p *Program[E]) Search(text []E) bool {
	n := len(p.insts)
	cur := newStateSet(n + 1)
	next := newStateSet(n + 1)

	for pos := 0; ; pos++ {
		if pos == 0 || (!p.anchored && pos < len(text)) {
			cur.insert(0)
		}

		atEnd := pos == len(text)
		if p.closure(cur, atEnd) {
			return true
		}
		if atEnd || (p.anchored && cur.isEmpty()) {
			return false
		}

		c := text[pos]
		next.clear()
		for _, pc := range cur.values() {
			if pc == n {
				continue
			}
			in := p.insts[pc]
			switch in.op {
			case opAtom, opOptional:
				if in.matches(c) {
					next.insert(pc + 1)
				}
			case opRepeat:
				if in.matches(c) {
					next.insert(pc)
				}
			case opEnd:
				if c == anchorEnd {
					next.insert(pc + 1)
				}
			}
		}
		cur, next = next, cur
	}
}

// closure follows the instructions that consume nothing and reports whether
// the accepting state is reachable.
func (p *Program[E]) closure(set *stateSet, atEnd bool) bool {
	n := len(p.insts)
	for i := 0; i < len(set.dense); i++ {
		pc := set.dense[i]
		if pc == n {
			return true
		}
		switch p.insts[pc].op {
		case opOptional, opRepeat:
			set.insert(pc + 1)
		case opEnd:
			if atEnd {
				set.insert(pc + 1)
			}
		}
	}
	return false
}

// stateSet is a sparse set of program states: O(1) insert, membership and
// clear, with insertion-ordered iteration over the dense part.
type stateSet struct {
	sparse []int
	dense  []int
}

func newStateSet(capacity int) *stateSet {
	return &stateSet{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

func (s *stateSet) contains(v int) bool {
	idx := s.sparse[v]
	return idx < len(s.dense) && s.dense[idx] == v
}

func (s *stateSet) insert(v int) {
	if s.contains(v) {
		return
	}
	s.sparse[v] = len(s.dense)
	s.dense = append(s.dense, v)
}

func (s *stateSet) clear() {
	s.dense = s.dense[:0]
}

func (s *stateSet) isEmpty() bool {
	return len(s.dense) == 0
}

func (s *stateSet) values() []int {
	return s.dense
}
