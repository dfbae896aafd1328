package render

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sequitur/grammar"
)

func engineFor(input string) *grammar.Engine {
	e := grammar.NewEngine()
	e.AppendString(input)
	return e
}

func TestPrettyClassicExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Pretty(&buf, engineFor("abcabd")); err != nil {
		t.Error(err)
	}
	expected := "0 → 1 c 1 d \n1 → a b \n"
	if buf.String() != expected {
		t.Errorf("pretty print mismatch:\ngot  %q\nwant %q", buf.String(), expected)
	}
}

func TestPrettyEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Pretty(&buf, engineFor("1 2")); err != nil {
		t.Error(err)
	}
	expected := "0 → \\1 _ \\2 \n"
	if buf.String() != expected {
		t.Errorf("escaping mismatch:\ngot  %q\nwant %q", buf.String(), expected)
	}
}

func TestExpandRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	inputs := []string{
		"", "a", "abcd", "abcdbc", "abcabd", "aaaa", "abcabcabc", "abab",
		"xyzxyzwxyzxyz", "mississippi", "how much wood would a woodchuck chuck",
	}
	for _, input := range inputs {
		if got := ExpandedString(engineFor(input).Start()); got != input {
			t.Errorf("expansion of grammar for %q reproduces %q", input, got)
		}
	}
}

func TestDigestDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	d1 := Digest(engineFor("abcabcabc"))
	d2 := Digest(engineFor("abcabcabc"))
	if d1 != d2 {
		t.Errorf("digests of equal inputs differ: %s vs %s", d1, d2)
	}
	if d3 := Digest(engineFor("abcabcabd")); d3 == d1 {
		t.Errorf("digests of different inputs collide: %s", d3)
	}
}

func TestGraphVizExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	filename := filepath.Join(t.TempDir(), "grammar.dot")
	GrammarToGraphViz(engineFor("abcabd"), filename)
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(content)
	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("dot output does not start a digraph")
	}
	if !strings.Contains(dot, "r000") || !strings.Contains(dot, "r001") {
		t.Errorf("dot output misses rule nodes:\n%s", dot)
	}
	if !strings.Contains(dot, "r000 -> r001") {
		t.Errorf("dot output misses reference edge:\n%s", dot)
	}
}

func TestHTMLExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	var buf bytes.Buffer
	GrammarAsHTML(engineFor("abcabd"), &buf)
	out := buf.String()
	if !strings.Contains(out, "<table") {
		t.Errorf("HTML output misses table")
	}
	if !strings.Contains(out, "R1") {
		t.Errorf("HTML output misses sub-rule row:\n%s", out)
	}
	if !strings.Contains(out, "abcabd") {
		t.Errorf("HTML output misses derived string:\n%s", out)
	}
}

func TestTreeStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.render")
	defer teardown()
	//
	root := TreeOf(engineFor("abab"))
	if root.Text != "R0" {
		t.Errorf("expected tree root R0, is %q", root.Text)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children below the start rule, have %d", len(root.Children))
	}
	if root.Children[0].Text != "R1" {
		t.Errorf("expected first child R1, is %q", root.Children[0].Text)
	}
	if len(root.Children[0].Children) != 2 {
		t.Errorf("expected terminals below R1")
	}
}
