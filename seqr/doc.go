/*
Package seqr/main provides an interactive command line tool (SeqR)
for playing with Sequitur grammars. Text typed at the prompt is fed,
rune by rune, into a grammar engine; commands show the grammar the
engine has built so far. SeqR serves as a sandbox for exploring how
Sequitur factors repetitive input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sequitur.grammar'
func tracer() tracing.Trace {
	return tracing.Select("sequitur.grammar")
}
