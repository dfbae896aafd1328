package render

import (
	"fmt"
	"os"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/sequitur/grammar"
)

// We need this for the set of rules. It sorts rules by serial ID.
func ruleComparator(r1, r2 interface{}) int {
	a := r1.(*grammar.Rule)
	b := r2.(*grammar.Rule)
	return utils.UInt64Comparator(a.ID(), b.ID())
}

// GrammarToGraphViz exports the rule DAG to the Graphviz Dot format, given
// a filename. Every rule becomes a record node listing its body; every
// non-terminal becomes an edge to the rule it references.
func GrammarToGraphViz(e *grammar.Engine, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		panic(fmt.Sprintf("file open error: %v", err.Error()))
	}
	defer f.Close()
	f.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	nm := newNumbering()
	nm.number(e.Start())
	rules := treeset.NewWith(ruleComparator)
	e.EachRule(func(r *grammar.Rule) interface{} {
		nm.number(r)
		rules.Add(r)
		return nil
	})
	for _, x := range rules.Values() {
		r := x.(*grammar.Rule)
		n := nm.index[r.ID()]
		f.WriteString(fmt.Sprintf("r%03d [fillcolor=%s label=\"{R%d | %s}\"]\n",
			n, nodecolor(e, r), n, ruleLabel(r, nm)))
	}
	for _, x := range rules.Values() {
		r := x.(*grammar.Rule)
		n := nm.index[r.ID()]
		r.Each(func(s *grammar.Symbol) interface{} {
			if s.IsNonTerminal() {
				f.WriteString(fmt.Sprintf("r%03d -> r%03d\n", n, nm.index[s.Rule().ID()]))
			}
			return nil
		})
	}
	f.WriteString("}\n")
	tracer().Infof("grammar with %d rules exported to %s", rules.Size(), filename)
}

func nodecolor(e *grammar.Engine, r *grammar.Rule) string {
	if r == e.Start() {
		return "lightgray"
	}
	return "white"
}

// ruleLabel renders a rule body for a Dot record label.
func ruleLabel(r *grammar.Rule, nm *numbering) string {
	label := ""
	r.Each(func(s *grammar.Symbol) interface{} {
		if label != "" {
			label += " "
		}
		if s.IsNonTerminal() {
			label += fmt.Sprintf("R%d", nm.index[s.Rule().ID()])
		} else {
			label += dotEscape(escapeTerminal(s.Terminal()))
		}
		return nil
	})
	return label
}

// dotEscape protects the characters Dot record labels reserve.
func dotEscape(v string) string {
	out := ""
	for _, c := range v {
		switch c {
		case '{', '}', '<', '>', '|', '"', '\\':
			out += "\\" + string(c)
		default:
			out += string(c)
		}
	}
	return out
}
