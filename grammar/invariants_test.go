package grammar

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// assertInvariants checks the universal grammar invariants against an
// engine: expansion correctness, digram uniqueness, rule utility, reference
// count accuracy, structural soundness of the symbol lists, and accuracy of
// the digram index.
func assertInvariants(t *testing.T, e *Engine, want string) {
	t.Helper()
	rules := e.reachable()
	checkExpansion(t, e, want)
	checkDigramUniqueness(t, rules)
	checkRuleUtility(t, e, rules)
	checkRefCounts(t, e, rules)
	checkStructure(t, e, rules)
	checkIndex(t, e, rules)
}

func checkExpansion(t *testing.T, e *Engine, want string) {
	t.Helper()
	if got := expansion(e.Start()); got != want {
		t.Errorf("grammar derives %q, expected %q", got, want)
	}
}

func checkDigramUniqueness(t *testing.T, rules []*Rule) {
	t.Helper()
	occ := make(map[string][]*Symbol)
	for _, r := range rules {
		for s := r.first(); !s.isGuard(); s = s.next {
			if s.next.isGuard() {
				break
			}
			occ[s.digramKey()] = append(occ[s.digramKey()], s)
		}
	}
	for key, list := range occ {
		if len(list) == 1 {
			continue
		}
		// two occurrences are tolerated if they are the overlapping halves
		// of a triple of identical symbols
		if len(list) == 2 && (list[0].next == list[1] || list[1].next == list[0]) {
			continue
		}
		t.Errorf("digram %q occurs %d times", key, len(list))
	}
}

func checkRuleUtility(t *testing.T, e *Engine, rules []*Rule) {
	t.Helper()
	for _, r := range rules {
		if r == e.start {
			continue
		}
		if r.refcnt < 2 {
			t.Errorf("rule %d has reference count %d, expected ≥ 2", r.serial, r.refcnt)
		}
	}
}

func checkRefCounts(t *testing.T, e *Engine, rules []*Rule) {
	t.Helper()
	refs := make(map[*Rule]int)
	for _, r := range rules {
		for s := r.first(); !s.isGuard(); s = s.next {
			if s.kind == nonterminalKind {
				refs[s.rule]++
			}
		}
	}
	for _, r := range rules {
		if r.refcnt != refs[r] {
			t.Errorf("rule %d stores reference count %d, grammar holds %d references",
				r.serial, r.refcnt, refs[r])
		}
	}
}

func checkStructure(t *testing.T, e *Engine, rules []*Rule) {
	t.Helper()
	reach := make(map[*Rule]bool, len(rules))
	for _, r := range rules {
		reach[r] = true
	}
	for _, r := range rules {
		if r.guard.rule != r {
			t.Errorf("guard of rule %d does not point back at its rule", r.serial)
		}
		steps := 0
		for s := r.guard; ; {
			if s.next.prev != s || s.prev.next != s {
				t.Fatalf("rule %d: broken prev/next linkage at %v", r.serial, s)
			}
			s = s.next
			if s == r.guard {
				break
			}
			if s.isGuard() {
				t.Fatalf("rule %d: foreign guard inside the body", r.serial)
			}
			if s.kind == nonterminalKind && !reach[s.rule] {
				t.Errorf("rule %d references unreachable rule %d", r.serial, s.rule.serial)
			}
			if steps++; steps > 1<<20 {
				t.Fatalf("rule %d: symbol list does not close on its guard", r.serial)
			}
		}
	}
}

func checkIndex(t *testing.T, e *Engine, rules []*Rule) {
	t.Helper()
	reach := make(map[*Rule]bool, len(rules))
	for _, r := range rules {
		reach[r] = true
	}
	e.index.each(func(key string, s *Symbol) {
		if s.prev == nil || s.next == nil || s.prev.next != s || s.next.prev != s {
			t.Errorf("index entry %q points at an unlinked symbol", key)
			return
		}
		if got := s.digramKey(); got != key {
			t.Errorf("index entry %q no longer matches its symbol's digram %q", key, got)
		}
		owner := s
		steps := 0
		for !owner.isGuard() {
			owner = owner.next
			if steps++; steps > 1<<20 {
				t.Fatalf("index entry %q: symbol list does not reach a guard", key)
			}
		}
		if !reach[owner.rule] {
			t.Errorf("index entry %q points into unreachable rule %d", key, owner.rule.serial)
		}
	})
}

// canonical flattens the grammar into a serial-independent form: rules in
// first-visit order, non-terminals printed as their renumbered position.
func canonical(e *Engine) string {
	rules := e.reachable()
	number := make(map[*Rule]int, len(rules))
	for i, r := range rules {
		number[r] = i
	}
	var sb strings.Builder
	for i, r := range rules {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(":")
		for s := r.first(); !s.isGuard(); s = s.next {
			if s.kind == nonterminalKind {
				sb.WriteString(" #")
				sb.WriteString(strconv.Itoa(number[s.rule]))
			} else {
				sb.WriteString(" ")
				sb.WriteString(s.fp)
			}
		}
		sb.WriteString(";")
	}
	return sb.String()
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.grammar")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(271828))
	input := randomString(rnd, "abc", 400)
	e1, e2 := NewEngine(), NewEngine()
	e1.AppendString(input)
	e2.AppendString(input)
	if c1, c2 := canonical(e1), canonical(e2); c1 != c2 {
		t.Errorf("two engines fed the same input disagree:\n%s\n%s", c1, c2)
	}
}

func randomString(rnd *rand.Rand, alphabet string, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rnd.Intn(len(alphabet))])
	}
	return sb.String()
}

// Random inputs over small alphabets, invariants checked after every
// appended terminal.
func TestPropertiesOnRandomInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.grammar")
	defer teardown()
	//
	cases := []struct {
		alphabet string
		length   int
		seed     int64
	}{
		{"ab", 300, 1},
		{"abc", 250, 2},
		{"abcd", 200, 3},
		{"aa", 64, 4}, // unary alphabet: pure period-1 repetition
	}
	for _, c := range cases {
		rnd := rand.New(rand.NewSource(c.seed))
		e := NewEngine()
		var sb strings.Builder
		for i := 0; i < c.length; i++ {
			ch := rune(c.alphabet[rnd.Intn(len(c.alphabet))])
			sb.WriteRune(ch)
			e.Append(ch)
			assertInvariants(t, e, sb.String())
			if t.Failed() {
				t.Fatalf("invariant violation on alphabet %q after prefix %q",
					c.alphabet, sb.String())
			}
		}
	}
}

// A longer run, invariants checked only at the end.
func TestLongRandomInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.grammar")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(31415))
	input := randomString(rnd, "abcd", 3000)
	e := NewEngine()
	e.AppendString(input)
	assertInvariants(t, e, input)
	tracer().Infof("3000 terminals compressed into %d rules", e.RuleCount())
}

// Pure repetition of period 1 builds a hierarchy of doubling rules.
func TestHierarchicalDoubling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequitur.grammar")
	defer teardown()
	//
	for n := 1; n <= 64; n *= 2 {
		input := strings.Repeat("a", n)
		e := NewEngine()
		e.AppendString(input)
		assertInvariants(t, e, input)
	}
	e := NewEngine()
	e.AppendString(strings.Repeat("a", 64))
	if e.RuleCount() > 8 {
		t.Errorf("expected logarithmically many rules for a^64, have %d", e.RuleCount())
	}
}

func BenchmarkAppend(b *testing.B) {
	rnd := rand.New(rand.NewSource(42))
	input := randomString(rnd, "abcd", 1<<12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := NewEngine()
		e.AppendString(input)
	}
}
