package pairing

import "testing"

func TestPairsAndFragment(t *testing.T) {
	// GGGAAACCC / (((...)))
	tb := New([]byte("GGGAAACCC"), []int{9, 8, 7, 0, 0, 0, 3, 2, 1})

	pairs := tb.Pairs()
	want := []Pair{{1, 9}, {2, 8}, {3, 7}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if p != want[i] {
			t.Errorf("pair %d: got %v, want %v", i, p, want[i])
		}
	}

	if got := tb.Fragment(4, 6); got != "AAA" {
		t.Errorf("Fragment(4,6) = %q, want AAA", got)
	}
	if got := tb.Sequence(); got != "GGGAAACCC" {
		t.Errorf("Sequence() = %q", got)
	}
}

func TestBpseqRoundTrip(t *testing.T) {
	tb := New([]byte("GCAU"), []int{4, 0, 0, 1})
	back := FromBpseqEntries(tb.BpseqEntries())
	if !tb.Equal(back) {
		t.Fatalf("BPSEQ entry round-trip lost structure: %+v vs %+v", tb, back)
	}
}

func TestFromBpseqEntriesPositional(t *testing.T) {
	// Gapped listing: rows land at positions 1..3, partner 5 goes stale.
	tb := FromBpseqEntries([]Entry{
		{Index: 1, Base: 'G', Partner: 5},
		{Index: 2, Base: 'G', Partner: 0},
		{Index: 5, Base: 'C', Partner: 1},
	})
	if tb.Len() != 3 {
		t.Fatalf("table length = %d, want 3", tb.Len())
	}
	if tb.Partner(1) != 5 {
		t.Fatalf("partner(1) = %d, want declared 5", tb.Partner(1))
	}
}

func TestFromPairs(t *testing.T) {
	tb, err := FromPairs("GGGAAACCC", []Pair{{1, 9}, {2, 8}, {3, 7}})
	if err != nil {
		t.Fatalf("FromPairs: %v", err)
	}
	if err := Check(tb); err != nil {
		t.Fatalf("expected valid table, got %v", err)
	}
	if tb.Partner(2) != 8 || tb.Partner(8) != 2 {
		t.Errorf("pair {2,8} not recorded symmetrically")
	}
}

func TestFromPairsConflicts(t *testing.T) {
	cases := []struct {
		name  string
		pairs []Pair
		kind  Violation
	}{
		{"out of range", []Pair{{1, 10}}, OutOfRangePartner},
		{"self pair", []Pair{{3, 3}}, SelfPair},
		{"double booked", []Pair{{1, 4}, {1, 3}}, DuplicatePartner},
	}
	for _, c := range cases {
		_, err := FromPairs("ACGU", c.pairs)
		se, ok := err.(*StructureError)
		if !ok {
			t.Fatalf("%s: got %v, want *StructureError", c.name, err)
		}
		if se.Kind != c.kind {
			t.Errorf("%s: kind = %s, want %s", c.name, se.Kind, c.kind)
		}
	}
}
