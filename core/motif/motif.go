// core/motif/motif.go
package motif

import "rnamotif-core/pairing"

// Stem is a maximal run of nested, adjacent pairs: (Left+k, Right-k) for
// 0 <= k < Len. A length-1 stem is a single isolated pair. Stems are
// read-only views over a pairing table; they carry indices only.
type Stem struct {
	Left  int // outermost pair, 5' side
	Right int // outermost pair, 3' side
	Len   int
}

// OuterLo and OuterHi bound the stem's full span.
func (s Stem) OuterLo() int { return s.Left }
func (s Stem) OuterHi() int { return s.Right }

// InnerLo and InnerHi are the innermost pair's positions.
func (s Stem) InnerLo() int { return s.Left + s.Len - 1 }
func (s Stem) InnerHi() int { return s.Right - s.Len + 1 }

// Pairs expands the stem back into its pair run, left index ascending.
func (s Stem) Pairs() []pairing.Pair {
	out := make([]pairing.Pair, 0, s.Len)
	for k := 0; k < s.Len; k++ {
		out = append(out, pairing.Pair{I: s.Left + k, J: s.Right - k})
	}
	return out
}

// FormsPseudoknotWith reports whether the outer spans of two stems
// cross: they overlap but neither contains the other. Containment and
// disjointness are not pseudoknots. The relation is symmetric.
func (s Stem) FormsPseudoknotWith(o Stem) bool {
	a, b := s, o
	if b.Left < a.Left {
		a, b = b, a
	}
	return a.Left < b.Left && b.Left < a.Right && a.Right < b.Right
}

// Hairpin is a stem whose innermost pair closes a run of consecutive
// unpaired positions [LoopLo, LoopHi].
type Hairpin struct {
	Stem   Stem
	LoopLo int
	LoopHi int
}

// LoopLen returns the number of unpaired positions in the loop.
func (h Hairpin) LoopLen() int { return h.LoopHi - h.LoopLo + 1 }

// Pseudoknot is an unordered pair of crossing stems, canonicalized so
// that A.Left < B.Left.
type Pseudoknot struct {
	A, B Stem
}
