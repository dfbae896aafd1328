package grammar

import "strconv"

// Rule is one production of the grammar: a circular doubly-linked list of
// symbols, closed by a single guard sentinel, plus a reference count. The
// engine's start rule derives the complete input; every other rule is the
// body of some repeated digram and is referenced at least twice.
type Rule struct {
	guard  *Symbol
	refcnt int
	serial uint64 // unique id, assigned monotonically at creation
}

// ID returns the rule's unique id. Ids are stable over the rule's lifetime
// and monotonic in creation order; they are a pure function of the input
// fed to the engine.
func (r *Rule) ID() uint64 {
	return r.serial
}

// RefCount returns the number of non-terminal symbols referencing r. The
// start rule has reference count 0.
func (r *Rule) RefCount() int {
	return r.refcnt
}

func (r *Rule) first() *Symbol { return r.guard.next }
func (r *Rule) last() *Symbol  { return r.guard.prev }

func (r *Rule) incRef() { r.refcnt++ }
func (r *Rule) decRef() { r.refcnt-- }

// fingerprint is the rule's contribution to digram keys.
func (r *Rule) fingerprint() string {
	return "rule:" + strconv.FormatUint(r.serial, 10)
}

// Len counts the symbols in the rule's body, excluding the guard.
func (r *Rule) Len() int {
	n := 0
	for s := r.first(); !s.isGuard(); s = s.next {
		n++
	}
	return n
}

// Each maps a function over the rule's body symbols in order, excluding the
// guard. Mapping stops at the first non-nil return value, which is handed
// back to the caller.
func (r *Rule) Each(mapper func(*Symbol) interface{}) interface{} {
	for s := r.first(); !s.isGuard(); s = s.next {
		if v := mapper(s); v != nil {
			return v
		}
	}
	return nil
}

// Iterator returns a restartable iterator over the rule's body symbols,
// excluding the guard. The rule must not be mutated (by appending to the
// engine) while an iterator is in use.
func (r *Rule) Iterator() *Iterator {
	return &Iterator{guard: r.guard, cur: r.guard}
}

// Iterator walks a rule's body symbols in order. Use it like this:
//
//    it := rule.Iterator()
//    for it.Next() {
//        sym := it.Symbol()
//        …
//    }
//
type Iterator struct {
	guard, cur *Symbol
}

// Next advances the iterator, returning false when the body is exhausted.
func (it *Iterator) Next() bool {
	it.cur = it.cur.next
	return it.cur != it.guard
}

// Symbol returns the symbol the iterator currently rests on, or nil if the
// iterator is before the first or after the last symbol.
func (it *Iterator) Symbol() *Symbol {
	if it.cur == it.guard {
		return nil
	}
	return it.cur
}

// Restart rewinds the iterator to before the first symbol.
func (it *Iterator) Restart() {
	it.cur = it.guard
}
