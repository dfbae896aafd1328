package grammar

import (
	"github.com/npillmayer/sequitur"
)

// Symbols come in three flavours: terminals, non-terminals, and the guard
// sentinel closing a rule's circular list. A tag plus a union-style pair of
// payload fields keeps dispatch simple.
type symkind int8

const (
	terminalKind symkind = iota
	nonterminalKind
	guardKind
)

// Symbol is a node in a rule's circular doubly-linked symbol list. A
// terminal symbol carries an input value, a non-terminal references a rule,
// and a guard marks both ends of its owning rule's list. Guards never take
// part in digrams and are never handed out by iterators.
type Symbol struct {
	kind       symkind
	term       sequitur.Terminal // payload for terminals
	rule       *Rule             // referenced rule for non-terminals, owning rule for guards
	fp         string            // stable fingerprint component, see digramKey
	prev, next *Symbol
	eng        *Engine
}

// IsTerminal returns true for terminal symbols.
func (s *Symbol) IsTerminal() bool {
	return s.kind == terminalKind
}

// IsNonTerminal returns true for symbols referencing a rule.
func (s *Symbol) IsNonTerminal() bool {
	return s.kind == nonterminalKind
}

// Terminal returns the input value a terminal symbol carries. Calling it on
// a non-terminal is a logic error.
func (s *Symbol) Terminal() sequitur.Terminal {
	if s.kind != terminalKind {
		panic("sequitur: Terminal() called on a non-terminal symbol")
	}
	return s.term
}

// Rule returns the rule a non-terminal symbol references. Calling it on a
// terminal is a logic error.
func (s *Symbol) Rule() *Rule {
	if s.kind != nonterminalKind {
		panic("sequitur: Rule() called on a terminal symbol")
	}
	return s.rule
}

func (s *Symbol) String() string {
	if s.kind == guardKind {
		return "#guard"
	}
	return s.fp
}

func (s *Symbol) isGuard() bool {
	return s.kind == guardKind
}

// valueEq decides whether two symbols carry the same value, i.e. would form
// one half of a run of identical symbols. Guards never equal anything.
func (s *Symbol) valueEq(o *Symbol) bool {
	return s.kind != guardKind && o.kind != guardKind && s.fp == o.fp
}

// digramKey is the index key for the digram (s, s.next). Fingerprints are
// stable over a symbol's lifetime: a non-terminal keys on the referenced
// rule's serial, never on a display number.
func (s *Symbol) digramKey() string {
	return s.fp + keySep + s.next.fp
}

// join splices the list so that s.next == right. If s already had a
// successor, the digram (s, old successor) is unrecorded first. A splice
// can also uncover a run of three identical symbols around either endpoint;
// the leftmost pair of such a triple is (re-)inserted into the index, since
// that is the one occurrence the overlap exception keeps alive.
func (s *Symbol) join(right *Symbol) {
	if s.next != nil {
		s.deleteDigram()

		if right.prev != nil && right.next != nil &&
			right.valueEq(right.prev) && right.valueEq(right.next) {
			s.eng.index.insert(right)
		}

		if s.prev != nil && s.next != nil &&
			s.valueEq(s.next) && s.valueEq(s.prev) {
			s.eng.index.insert(s.prev)
		}
	}
	s.next = right
	right.prev = s
}

// insertAfter inserts y between s and s's current successor.
func (s *Symbol) insertAfter(y *Symbol) {
	y.join(s.next)
	s.join(y)
}

// delete unlinks s from its list, scrubs any index entry still pointing at
// s, and releases a reference if s is a non-terminal. Guards are never
// deleted through this path.
func (s *Symbol) delete() {
	if s.kind == guardKind {
		panic("sequitur: attempt to delete a rule guard")
	}
	s.prev.join(s.next)
	s.deleteDigram()
	if s.kind == nonterminalKind {
		s.rule.decRef()
	}
}

// deleteDigram unrecords the digram (s, s.next), but only if the index
// still points at s: a fresher occurrence may have overwritten the slot and
// must not be clobbered by this cleanup.
func (s *Symbol) deleteDigram() {
	if s.isGuard() || s.next.isGuard() {
		return
	}
	s.eng.index.removeIf(s)
}

// check enforces digram uniqueness after s was newly linked. It returns
// true if the digram (s, s.next) was already known to the index — either as
// an overlapping occurrence at the same spot, which needs no action, or as
// a genuine repetition, which is resolved by processMatch. A false return
// means the digram was recorded as new, or that there is no digram because
// s or its successor is a guard.
func (s *Symbol) check() bool {
	if s.isGuard() || s.next.isGuard() {
		return false
	}

	m, ok := s.eng.index.lookup(s)
	if !ok {
		s.eng.index.insert(s)
		return false
	}

	// m == s: the slot already holds this very occurrence. m.next == s: the
	// stored occurrence abuts this one (centre of a triple) — not a true
	// duplicate either.
	if m != s && m.next != s {
		s.processMatch(m)
	}
	return true
}

// processMatch resolves a repeated digram: the occurrence at s repeats the
// recorded occurrence at m. If m and its successor already make up the
// entire body of a rule, that rule is reused; otherwise a fresh rule is
// created from the digram and both occurrences are substituted, the older
// one at m first. Afterwards the affected rule is inspected for a
// singly-used first symbol, which is the trigger for inlining.
func (s *Symbol) processMatch(m *Symbol) {
	var r *Rule

	if m.prev.isGuard() && m.next.next.isGuard() {
		r = m.prev.rule
		tracer().Debugf("digram %s reuses rule %d", s.digramKey(), r.serial)
		s.substitute(r)
	} else {
		r = s.eng.newRule()
		tracer().Debugf("digram %s forms rule %d", s.digramKey(), r.serial)

		r.last().insertAfter(s.eng.copyOf(s))
		r.last().insertAfter(s.eng.copyOf(s.next))

		m.substitute(r)
		s.substitute(r)

		s.eng.index.insert(r.first())
	}

	// restore rule utility: a rule used just once gets inlined
	if f := r.first(); f.kind == nonterminalKind && f.rule.refcnt == 1 {
		tracer().Debugf("inlining singly-used rule %d", f.rule.serial)
		f.expand()
	}
}

// substitute replaces the digram (s, s.next) by a single non-terminal
// referencing r. The substitution creates up to two new digrams, with the
// left and the right neighbour; the left one is offered to the index first,
// the right one only if the left was newly recorded.
func (s *Symbol) substitute(r *Rule) {
	if s.isGuard() || s.next.isGuard() {
		panic("sequitur: substitution at a rule guard")
	}
	q := s.prev

	q.next.delete()
	q.next.delete()

	q.insertAfter(s.eng.newNonterminal(r))

	if !q.check() {
		q.next.check()
	}
}

// expand inlines the rule referenced by s at s's position and dissolves the
// rule. Precondition: s is a non-terminal at the head of its containing
// rule, and the referenced rule has exactly one remaining use — s itself.
// The rightmost boundary digram created by the splice is registered so
// later checks see it; the leftmost boundary touches the containing rule's
// guard and forms no digram.
func (s *Symbol) expand() {
	left := s.prev
	right := s.next
	r := s.rule
	f := r.first()
	l := r.last()

	s.eng.index.removeIf(s)

	left.join(f)
	l.join(right)

	s.eng.index.insert(l)

	// the dissolved rule keeps nothing: its body now lives in the
	// containing rule, its guard is reset to an empty list
	r.decRef()
	r.guard.next, r.guard.prev = r.guard, r.guard
}
