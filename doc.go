/*
Package sequitur is an online grammar-induction toolbox.

Sequitur reads a sequence of terminal symbols one at a time and maintains a
context-free grammar whose start rule derives exactly the input seen so far.
Every repeated adjacent pair of symbols is factored out into a rule of its
own, so the grammar doubles as a compressed, hierarchical view of the
input's repetitive structure. Package structure is as follows:

■ grammar: Package grammar implements the construction engine: the symbol
list, the digram index, the rule table, and the invariant enforcement that
drives rule creation, substitution and dissolution.

■ render: Package render turns a constructed grammar into human-readable
forms: numbered production listings, terminal trees, Graphviz and HTML
exports, and a canonical digest.

■ scanner: Package scanner provides tokenizers which turn input text into
terminal streams for the engine.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sequitur
