/*
Package grammar implements the Sequitur grammar-construction engine.

An Engine accepts terminal symbols one at a time and maintains a
context-free grammar whose start rule derives exactly the input seen so
far. After every appended terminal two invariants hold:

▪ Digram uniqueness: no pair of adjacent symbols occurs more than once in
the whole grammar. The single tolerated exception is the centre overlap in
a run of three identical symbols, which is what lets the algorithm
terminate on inputs like "aaaa".

▪ Rule utility: every rule except the start rule is referenced at least
twice. A rule whose reference count drops to one is inlined at its
remaining use and dissolved.

Rules are circular doubly-linked lists of symbols, closed by a guard
sentinel. A hash index maps each digram to the left symbol of its one
recorded occurrence; every splice of the symbol list keeps that index in
sync. All mutation happens synchronously inside Append — when it returns,
the grammar is consistent and may be traversed.

Engines are not safe for concurrent use; a traversal must not interleave
with Append.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sequitur.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("sequitur.grammar")
}
