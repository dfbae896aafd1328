package grammar

import (
	"github.com/emirpasic/gods/maps/hashmap"
)

// keySep separates the two fingerprint halves of a digram key. The control
// character cannot occur in a rule fingerprint, and terminal values
// containing it are outside the terminal contract.
const keySep = "\x1f"

// digramIndex maps digram keys to the left symbol of the one recorded
// occurrence of that digram anywhere in the grammar. Entries are non-owning;
// every symbol-removal path scrubs stale entries via removeIf.
type digramIndex struct {
	m *hashmap.Map
}

func newDigramIndex() *digramIndex {
	return &digramIndex{m: hashmap.New()}
}

// lookup returns the recorded left symbol for the digram (s, s.next).
func (t *digramIndex) lookup(s *Symbol) (*Symbol, bool) {
	v, ok := t.m.Get(s.digramKey())
	if !ok {
		return nil, false
	}
	return v.(*Symbol), true
}

// insert records s as the occurrence of its digram, overwriting any prior
// entry. Prior occurrences are resolved before this is called.
func (t *digramIndex) insert(s *Symbol) {
	t.m.Put(s.digramKey(), s)
}

// removeIf deletes the entry for s's digram, but only if it still points at
// s. A later occurrence may have overwritten the slot; cleanup of an
// earlier one must then leave it alone.
func (t *digramIndex) removeIf(s *Symbol) {
	k := s.digramKey()
	if v, ok := t.m.Get(k); ok && v.(*Symbol) == s {
		t.m.Remove(k)
	}
}

func (t *digramIndex) size() int {
	return t.m.Size()
}

// each iterates over all recorded occurrences.
func (t *digramIndex) each(f func(key string, s *Symbol)) {
	for _, k := range t.m.Keys() {
		v, _ := t.m.Get(k)
		f(k.(string), v.(*Symbol))
	}
}
