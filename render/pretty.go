package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/sequitur"
	"github.com/npillmayer/sequitur/grammar"
)

// numbering assigns display numbers to rules in order of first appearance.
// Display numbers are per-rendering state; they are never fed back into the
// engine.
type numbering struct {
	rules *arraylist.List // rules in display order
	index map[uint64]int  // rule id → display number
}

func newNumbering() *numbering {
	return &numbering{
		rules: arraylist.New(),
		index: make(map[uint64]int),
	}
}

// number returns r's display number, assigning the next free one on first
// sight.
func (nm *numbering) number(r *grammar.Rule) int {
	if i, ok := nm.index[r.ID()]; ok {
		return i
	}
	i := nm.rules.Size()
	nm.index[r.ID()] = i
	nm.rules.Add(r)
	return i
}

func (nm *numbering) rule(i int) *grammar.Rule {
	v, _ := nm.rules.Get(i)
	return v.(*grammar.Rule)
}

// Pretty writes the grammar as a numbered production listing, one rule per
// line:
//
//    0 → 1 c 1 d
//    1 → a b
//
// Rule 0 is the start rule. Terminals that would be mistaken for rule
// numbers or structure (digits, space, backslash, parentheses, underscore)
// are escaped.
func Pretty(w io.Writer, e *grammar.Engine) error {
	nm := newNumbering()
	nm.number(e.Start())
	for i := 0; i < nm.rules.Size(); i++ {
		if _, err := fmt.Fprintf(w, "%d → ", i); err != nil {
			return err
		}
		if err := prettyRule(w, nm.rule(i), nm); err != nil {
			return err
		}
	}
	return nil
}

func prettyRule(w io.Writer, r *grammar.Rule, nm *numbering) error {
	it := r.Iterator()
	for it.Next() {
		s := it.Symbol()
		var out string
		if s.IsNonTerminal() {
			out = fmt.Sprintf("%d", nm.number(s.Rule()))
		} else {
			out = escapeTerminal(s.Terminal())
		}
		if _, err := fmt.Fprint(w, out, " "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// escapeTerminal renders a terminal for the production listing.
func escapeTerminal(t sequitur.Terminal) string {
	v := sequitur.TerminalString(t)
	switch v {
	case " ":
		return "_"
	case "\n":
		return "\\n"
	case "\t":
		return "\\t"
	}
	if len(v) == 1 && strings.ContainsAny(v, "\\()_0123456789") {
		return "\\" + v
	}
	return v
}

// Expand reconstructs the string a rule derives, recursively replacing
// every non-terminal by its rule's body. Expanding an engine's start rule
// reproduces the complete input.
func Expand(w io.Writer, r *grammar.Rule) error {
	v := r.Each(func(s *grammar.Symbol) interface{} {
		if s.IsNonTerminal() {
			if err := Expand(w, s.Rule()); err != nil {
				return err
			}
			return nil
		}
		if _, err := io.WriteString(w, sequitur.TerminalString(s.Terminal())); err != nil {
			return err
		}
		return nil
	})
	if err, ok := v.(error); ok {
		return err
	}
	return nil
}

// ExpandedString is Expand into a string.
func ExpandedString(r *grammar.Rule) string {
	var sb strings.Builder
	Expand(&sb, r)
	return sb.String()
}
