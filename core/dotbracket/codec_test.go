package dotbracket

import (
	"errors"
	"testing"

	"rnamotif-core/pairing"
)

func TestParseHairpin(t *testing.T) {
	tb, err := Parse("GGGAAACCC", "(((...)))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []pairing.Pair{{I: 1, J: 9}, {I: 2, J: 8}, {I: 3, J: 7}}
	got := tb.Pairs()
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseCrossingClasses(t *testing.T) {
	tb, err := Parse("ACGU", "([)]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tb.Partner(1) != 3 || tb.Partner(2) != 4 {
		t.Fatalf("want pairs {1,3},{2,4}, got partners %d %d %d %d",
			tb.Partner(1), tb.Partner(2), tb.Partner(3), tb.Partner(4))
	}
}

func TestParseLetterClasses(t *testing.T) {
	tb, err := Parse("GGAACC", "A(..)a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tb.Partner(1) != 6 || tb.Partner(2) != 5 {
		t.Fatalf("letter-class pairs wrong: %d %d", tb.Partner(1), tb.Partner(2))
	}
}

func TestParseSymmetry(t *testing.T) {
	tb, err := Parse("GGGAAACCCAAAGGGCCC", "((([[[...)))...]]]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i := 1; i <= tb.Len(); i++ {
		if j := tb.Partner(i); j != 0 && tb.Partner(j) != i {
			t.Errorf("asymmetric partner at %d", i)
		}
	}
	if err := pairing.Check(tb); err != nil {
		t.Errorf("parsed table failed validation: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	var lme *LengthMismatchError
	if _, err := Parse("ACGU", "(.)"); !errors.As(err, &lme) {
		t.Errorf("length mismatch: got %v", err)
	}

	var ube *UnbalancedBracketError
	if _, err := Parse("GGG", "(()"); !errors.As(err, &ube) {
		t.Errorf("leftover opener: got unexpected error type")
	}
	if _, err := Parse("GGG", "())"); !errors.As(err, &ube) {
		t.Errorf("stack underflow: got unexpected error type")
	}

	var use *UnknownSymbolError
	if _, err := Parse("GGG", "(!)"); !errors.As(err, &use) {
		t.Fatalf("unknown symbol: got %v", err)
	}
	if use.Pos != 2 || use.Symbol != '!' {
		t.Errorf("unknown symbol details: %+v", use)
	}
}
