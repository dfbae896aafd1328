package render

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/sequitur/grammar"
)

// grammarExport is the flattened, acyclic form of a grammar, suitable for
// hashing: rules in display order, symbols as strings, non-terminals
// denoted by their display number. Two engines fed the same input flatten
// to the same export.
type grammarExport struct {
	Rules []ruleExport
}

type ruleExport struct {
	Number  int
	Symbols []string
}

func exportGrammar(e *grammar.Engine) grammarExport {
	nm := newNumbering()
	nm.number(e.Start())
	exp := grammarExport{}
	for i := 0; i < nm.rules.Size(); i++ {
		re := ruleExport{Number: i}
		nm.rule(i).Each(func(s *grammar.Symbol) interface{} {
			if s.IsNonTerminal() {
				re.Symbols = append(re.Symbols, fmt.Sprintf("#%d", nm.number(s.Rule())))
			} else {
				re.Symbols = append(re.Symbols, escapeTerminal(s.Terminal()))
			}
			return nil
		})
		exp.Rules = append(exp.Rules, re)
	}
	return exp
}

// Digest returns a canonical hash of the grammar. Equal inputs produce
// equal digests; the digest is independent of the engine's internal rule
// ids.
func Digest(e *grammar.Engine) string {
	return fmt.Sprintf("%x", structhash.Sha1(exportGrammar(e), 1))
}
