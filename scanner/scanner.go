/*
Package scanner provides tokenizers which turn input text into terminal
streams for the grammar engine.

Two default tokenizers are provided: one emitting every rune of the input
as a terminal (the classic character-level use of Sequitur), and one
emitting whitespace-separated words. An adapter for lexmachine, for
regex-defined token alphabets, lives in this package as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sequitur"
	"github.com/npillmayer/sequitur/grammar"
)

// tracer traces with key 'sequitur.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("sequitur.scanner")
}

// Tokenizer is a scanner interface: a stream of terminals for the engine.
type Tokenizer interface {
	NextToken() (sequitur.Terminal, bool) // ok == false at end of input
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Feed pumps a tokenizer into an engine until the input is exhausted and
// returns the number of terminals appended.
func Feed(e *grammar.Engine, tz Tokenizer) int {
	n := 0
	for {
		t, ok := tz.NextToken()
		if !ok {
			break
		}
		e.Append(t)
		n++
	}
	tracer().Debugf("fed %d terminals into the engine", n)
	return n
}

// --- Rune tokenizer ---------------------------------------------------------

// RuneTokenizer emits every rune of the input as one terminal. Create one
// with Runes.
type RuneTokenizer struct {
	rd    *bufio.Reader
	Error func(error) // error handler
}

var _ Tokenizer = (*RuneTokenizer)(nil)

// Runes creates a tokenizer emitting the input's runes in order.
func Runes(input io.Reader) *RuneTokenizer {
	return &RuneTokenizer{
		rd:    bufio.NewReader(input),
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *RuneTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *RuneTokenizer) NextToken() (sequitur.Terminal, bool) {
	r, _, err := t.rd.ReadRune()
	if err == io.EOF {
		tracer().Debugf("RuneTokenizer reached end of input")
		return nil, false
	}
	if err != nil {
		t.Error(err)
		return nil, false
	}
	return r, true
}

// --- Word tokenizer ---------------------------------------------------------

// WordTokenizer emits whitespace-separated words as terminals. Create one
// with Words.
type WordTokenizer struct {
	sc    *bufio.Scanner
	Error func(error)
}

var _ Tokenizer = (*WordTokenizer)(nil)

// Words creates a tokenizer splitting the input on whitespace.
func Words(input io.Reader) *WordTokenizer {
	sc := bufio.NewScanner(input)
	sc.Split(bufio.ScanWords)
	return &WordTokenizer{
		sc:    sc,
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *WordTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *WordTokenizer) NextToken() (sequitur.Terminal, bool) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			t.Error(err)
		}
		return nil, false
	}
	return t.sc.Text(), true
}
