package render

import (
	"fmt"

	"github.com/npillmayer/sequitur/grammar"
	"github.com/pterm/pterm"
)

// TreeOf builds a pterm tree of the start rule's derivation: non-terminals
// become inner nodes labelled with their display number, terminals become
// leaves. Shared rules appear once per use — the tree view unfolds the DAG.
func TreeOf(e *grammar.Engine) pterm.TreeNode {
	nm := newNumbering()
	nm.number(e.Start())
	// pterm makes every level-0 item a child of the tree's root, so the
	// start rule's symbols are listed at level 0 and the root is named R0.
	ll := leveledRule(e.Start(), nm, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	root.Text = "R0"
	return root
}

// RenderTree prints the derivation tree to the terminal.
func RenderTree(e *grammar.Engine) {
	pterm.DefaultTree.WithRoot(TreeOf(e)).Render()
}

func leveledRule(r *grammar.Rule, nm *numbering, ll pterm.LeveledList, level int) pterm.LeveledList {
	r.Each(func(s *grammar.Symbol) interface{} {
		if s.IsNonTerminal() {
			ll = append(ll, pterm.LeveledListItem{
				Level: level,
				Text:  fmt.Sprintf("R%d", nm.number(s.Rule())),
			})
			ll = leveledRule(s.Rule(), nm, ll, level+1)
		} else {
			ll = append(ll, pterm.LeveledListItem{
				Level: level,
				Text:  escapeTerminal(s.Terminal()),
			})
		}
		return nil
	})
	return ll
}
