package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/sequitur/grammar"
	"github.com/npillmayer/sequitur/render"
	"github.com/npillmayer/sequitur/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("SeqR"). Every line of free text the
// user enters is appended, rune by rune, to a grammar engine; colon-
// commands inspect the grammar built so far:
//
//    :rules        print the numbered production listing
//    :tree         show the derivation as a tree
//    :digest       print the canonical grammar digest
//    :dot <file>   export the rule DAG to a Graphviz file
//    :reset        start over with a fresh engine
//    :quit         leave
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	inputf := flag.String("input", "", "Initial input file to feed")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo)
	pterm.Info.Println("Welcome to SeqR") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	intp := &Intp{
		engine: grammar.NewEngine(),
	}
	if *inputf != "" {
		intp.loadInputFile(*inputf)
	}
	repl, err := readline.New("seqr> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	engine   *grammar.Engine
	appended int // terminals fed so far
	repl     *readline.Instance
}

// loadInputFile feeds a whole file into the engine before the prompt comes
// up.
func (intp *Intp) loadInputFile(filename string) {
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open input file: %s", filename)
		return
	}
	defer f.Close()
	n := scanner.Feed(intp.engine, scanner.Runes(f))
	intp.appended += n
	pterm.Info.Println("fed", n, "terminals from", filename)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute handles one input line: a colon-command or free text to append.
func (intp *Intp) Execute(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.engine.AppendString(line)
		intp.appended += len([]rune(line))
		pterm.Info.Println(intp.appended, "terminals,", intp.engine.RuleCount(), "rules")
		return false, nil
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":rules":
		if err := render.Pretty(os.Stdout, intp.engine); err != nil {
			return false, err
		}
	case ":tree":
		render.RenderTree(intp.engine)
	case ":digest":
		pterm.Info.Println(render.Digest(intp.engine))
	case ":dot":
		if len(args) < 2 {
			pterm.Error.Println("usage: :dot <file>")
			break
		}
		render.GrammarToGraphViz(intp.engine, args[1])
		pterm.Info.Println("exported to", args[1])
	case ":reset":
		intp.engine = grammar.NewEngine()
		intp.appended = 0
		pterm.Info.Println("fresh engine")
	case ":quit":
		return true, nil
	default:
		pterm.Error.Println("unknown command", args[0])
	}
	return false, nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
