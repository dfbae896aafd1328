package grammar

import (
	"github.com/npillmayer/sequitur"
)

// Engine is the public driver of grammar construction. It owns the start
// rule and the digram index; terminals are fed in one at a time with
// Append. The grammar state after n appends is a pure function of the n
// terminals appended — two engines fed the same sequence produce the same
// grammar, rule ids included.
//
// Engines hold no locks; they are meant for strictly sequential use.
type Engine struct {
	index   *digramIndex
	start   *Rule
	serials uint64 // monotonic rule id source
}

// NewEngine creates a fresh engine with an empty start rule.
func NewEngine() *Engine {
	e := &Engine{index: newDigramIndex()}
	e.start = e.newRule()
	return e
}

// Start returns the start rule, whose body derives the complete input
// appended so far.
func (e *Engine) Start() *Rule {
	return e.start
}

// Append feeds one terminal to the engine. The symbol is linked to the tail
// of the start rule and the digram it forms with its left neighbour is
// checked; any cascade of substitutions and inlinings this triggers
// completes before Append returns.
func (e *Engine) Append(t sequitur.Terminal) {
	s := e.newTerminal(t)
	e.start.last().insertAfter(s)
	if p := s.prev; !p.isGuard() {
		p.check()
	}
}

// AppendString appends every rune of str as one terminal. A convenience for
// the typical character-stream use of the algorithm.
func (e *Engine) AppendString(str string) {
	for _, r := range str {
		e.Append(r)
	}
}

// RuleCount returns the number of rules reachable from the start rule,
// including the start rule itself.
func (e *Engine) RuleCount() int {
	return len(e.reachable())
}

// EachRule maps a function over all reachable rules in first-visit order,
// starting with the start rule.
func (e *Engine) EachRule(mapper func(*Rule) interface{}) interface{} {
	for _, r := range e.reachable() {
		if v := mapper(r); v != nil {
			return v
		}
	}
	return nil
}

// reachable collects the rules reachable from the start rule in
// breadth-first, first-visit order. The order is deterministic.
func (e *Engine) reachable() []*Rule {
	seen := map[*Rule]bool{e.start: true}
	rules := []*Rule{e.start}
	for i := 0; i < len(rules); i++ {
		for s := rules[i].first(); !s.isGuard(); s = s.next {
			if s.kind == nonterminalKind && !seen[s.rule] {
				seen[s.rule] = true
				rules = append(rules, s.rule)
			}
		}
	}
	return rules
}

// --- Symbol allocation ------------------------------------------------------

func (e *Engine) newRule() *Rule {
	r := &Rule{serial: e.serials}
	e.serials++
	g := &Symbol{kind: guardKind, rule: r, eng: e}
	g.next, g.prev = g, g
	r.guard = g
	return r
}

func (e *Engine) newTerminal(t sequitur.Terminal) *Symbol {
	return &Symbol{
		kind: terminalKind,
		term: t,
		fp:   sequitur.TerminalString(t),
		eng:  e,
	}
}

func (e *Engine) newNonterminal(r *Rule) *Symbol {
	r.incRef()
	return &Symbol{
		kind: nonterminalKind,
		rule: r,
		fp:   r.fingerprint(),
		eng:  e,
	}
}

// copyOf creates a fresh, unlinked symbol with the same value as s, used
// when a digram becomes a rule body.
func (e *Engine) copyOf(s *Symbol) *Symbol {
	if s.kind == nonterminalKind {
		return e.newNonterminal(s.rule)
	}
	return e.newTerminal(s.term)
}
