// core/motif/scanner.go
package motif

import "rnamotif-core/pairing"

// DefaultMinLoop is the minimum hairpin loop size when Config leaves it
// unset. Three unpaired nucleotides is the usual biological floor.
const DefaultMinLoop = 3

// Config holds motif scanning parameters.
type Config struct {
	MinLoop int // minimum hairpin loop size (<=0 = DefaultMinLoop)
}

// Scanner enumerates structural motifs over pairing tables. Every scan
// re-validates its table first and fails with a *pairing.StructureError
// on malformed input; motifs are never computed from an invalid table.
type Scanner struct {
	cfg Config
}

// New creates a Scanner.
func New(c Config) *Scanner {
	if c.MinLoop <= 0 {
		c.MinLoop = DefaultMinLoop
	}
	return &Scanner{cfg: c}
}

// MinLoop returns the effective hairpin loop threshold.
func (s *Scanner) MinLoop() int { return s.cfg.MinLoop }

// Stems returns all maximal stems, ordered by outer-left index
// ascending. Every pair of the table belongs to exactly one stem.
func (s *Scanner) Stems(t pairing.Table) ([]Stem, error) {
	if err := pairing.Check(t); err != nil {
		return nil, err
	}
	return stems(t), nil
}

// stems groups pairs (already sorted by left index) by strict nested
// adjacency: a pair extends the open stem when its left index increments
// and its right index decrements by one.
func stems(t pairing.Table) []Stem {
	var out []Stem
	for _, p := range t.Pairs() {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if p.I == last.Left+last.Len && p.J == last.Right-last.Len {
				last.Len++
				continue
			}
		}
		out = append(out, Stem{Left: p.I, Right: p.J, Len: 1})
	}
	return out
}

// Hairpins returns every stem whose innermost pair closes an all-unpaired
// loop of at least MinLoop positions, ordered by outer-left index.
func (s *Scanner) Hairpins(t pairing.Table) ([]Hairpin, error) {
	if err := pairing.Check(t); err != nil {
		return nil, err
	}
	var out []Hairpin
	for _, st := range stems(t) {
		lo, hi := st.InnerLo()+1, st.InnerHi()-1
		if hi-lo+1 < s.cfg.MinLoop {
			continue
		}
		if !loopClosed(t, lo, hi) {
			continue
		}
		out = append(out, Hairpin{Stem: st, LoopLo: lo, LoopHi: hi})
	}
	return out, nil
}

// loopClosed reports whether [lo, hi] is entirely unpaired and no pair
// has exactly one endpoint inside the range.
func loopClosed(t pairing.Table, lo, hi int) bool {
	for i := lo; i <= hi; i++ {
		if t.Partner(i) != 0 {
			return false
		}
	}
	for _, p := range t.Pairs() {
		inI := p.I >= lo && p.I <= hi
		inJ := p.J >= lo && p.J <= hi
		if inI != inJ {
			return false
		}
	}
	return true
}

// Pseudoknots returns every unordered pair of stems whose spans cross,
// canonicalized to A.Left < B.Left and ordered by (A.Left, B.Left).
// Quadratic over stems; real structures yield few tens of them.
func (s *Scanner) Pseudoknots(t pairing.Table) ([]Pseudoknot, error) {
	if err := pairing.Check(t); err != nil {
		return nil, err
	}
	st := stems(t)
	var out []Pseudoknot
	for i := 0; i < len(st); i++ {
		for j := i + 1; j < len(st); j++ {
			if st[i].FormsPseudoknotWith(st[j]) {
				out = append(out, Pseudoknot{A: st[i], B: st[j]})
			}
		}
	}
	return out, nil
}
