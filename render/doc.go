/*
Package render turns a constructed Sequitur grammar into human-readable
forms.

Renderers walk the grammar through the engine's read-only surface; they
must not interleave with Append. Rule numbering is a rendering concern:
rules are numbered 0, 1, 2, … in order of first appearance during a walk,
with the start rule always number 0. The engine's stable rule ids are not
shown — they exist for the digram index, not for people.

Available renderings: a numbered production listing (Pretty), the
reconstructed input (Expand), a Graphviz export of the rule DAG
(GrammarToGraphViz), an HTML production table (GrammarAsHTML), a terminal
tree (RenderTree), and a canonical digest (Digest).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sequitur.render'.
func tracer() tracing.Trace {
	return tracing.Select("sequitur.render")
}
