package render

import (
	"fmt"
	"html"
	"io"

	"github.com/npillmayer/sequitur/grammar"
)

// GrammarAsHTML exports the grammar as an HTML table of productions, one
// row per rule: display number, body, reference count, derived string.
func GrammarAsHTML(e *grammar.Engine, w io.Writer) {
	nm := newNumbering()
	nm.number(e.Start())
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("grammar of %d rules<p>", e.RuleCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td>rule</td><td>body</td><td>uses</td><td>derives</td></tr>\n")
	for i := 0; i < nm.rules.Size(); i++ {
		r := nm.rule(i)
		io.WriteString(w, fmt.Sprintf("<tr><td>R%d</td>\n", i))
		io.WriteString(w, "<td>")
		r.Each(func(s *grammar.Symbol) interface{} {
			if s.IsNonTerminal() {
				io.WriteString(w, fmt.Sprintf("R%d ", nm.number(s.Rule())))
			} else {
				io.WriteString(w, html.EscapeString(escapeTerminal(s.Terminal()))+" ")
			}
			return nil
		})
		io.WriteString(w, "</td>\n")
		io.WriteString(w, fmt.Sprintf("<td>%d</td>\n", r.RefCount()))
		io.WriteString(w, "<td>"+html.EscapeString(ExpandedString(r))+"</td>\n")
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
