// core/pairing/table.go
package pairing

// Entry is one BPSEQ-style triple: 1-based position, base character, and
// the 1-based position of the paired nucleotide (0 = unpaired).
type Entry struct {
	Index   int
	Base    byte
	Partner int
}

// Pair is a materialized base pair with I < J.
type Pair struct {
	I, J int
}

// Table is the canonical pairing representation: one row per nucleotide
// position, addressed 1-based. Constructors copy their inputs and no
// method mutates a row, so a Table may be shared freely once built.
type Table struct {
	bases    []byte
	partners []int
}

// New builds a table from parallel base/partner slices. Partner values
// are taken as-is; Check reports any invariant violations.
func New(bases []byte, partners []int) Table {
	t := Table{
		bases:    make([]byte, len(bases)),
		partners: make([]int, len(partners)),
	}
	copy(t.bases, bases)
	copy(t.partners, partners)
	return t
}

// Len returns the number of positions N.
func (t Table) Len() int { return len(t.bases) }

// Base returns the base character at 1-based position i.
func (t Table) Base(i int) byte { return t.bases[i-1] }

// Partner returns the 1-based partner of position i, or 0 if unpaired.
func (t Table) Partner(i int) int { return t.partners[i-1] }

// Sequence returns the full nucleotide sequence.
func (t Table) Sequence() string { return string(t.bases) }

// Fragment returns the bases of the inclusive 1-based range [lo, hi].
func (t Table) Fragment(lo, hi int) string {
	if lo > hi {
		return ""
	}
	return string(t.bases[lo-1 : hi])
}

// Pairs returns every pair {i,j} with i < j, ordered by i ascending.
func (t Table) Pairs() []Pair {
	var out []Pair
	for i := 1; i <= t.Len(); i++ {
		if j := t.Partner(i); j > i {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}

// Equal reports structural equality: same bases and same partners.
func (t Table) Equal(o Table) bool {
	if t.Len() != o.Len() {
		return false
	}
	for i := 1; i <= t.Len(); i++ {
		if t.Base(i) != o.Base(i) || t.Partner(i) != o.Partner(i) {
			return false
		}
	}
	return true
}

// BpseqEntries serializes the table into ordered BPSEQ triples.
func (t Table) BpseqEntries() []Entry {
	out := make([]Entry, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		out = append(out, Entry{Index: i, Base: t.Base(i), Partner: t.Partner(i)})
	}
	return out
}

// FromBpseqEntries builds a table from BPSEQ triples. Rows are taken
// positionally (row k becomes position k+1) and partner values as
// declared, so a gapped or inconsistent listing still constructs; the
// stale partner indices it produces are then rejected by Check.
func FromBpseqEntries(entries []Entry) Table {
	bases := make([]byte, len(entries))
	partners := make([]int, len(entries))
	for k, e := range entries {
		bases[k] = e.Base
		partners[k] = e.Partner
	}
	return Table{bases: bases, partners: partners}
}

// FromPairs builds a table over sequence with the given explicit pair
// list. Out-of-range, self-pairing, or conflicting assignments are
// rejected with a *StructureError.
func FromPairs(sequence string, pairs []Pair) (Table, error) {
	n := len(sequence)
	partners := make([]int, n)
	for _, p := range pairs {
		for _, i := range [2]int{p.I, p.J} {
			if i < 1 || i > n {
				return Table{}, &StructureError{Kind: OutOfRangePartner, Index: i}
			}
		}
		if p.I == p.J {
			return Table{}, &StructureError{Kind: SelfPair, Index: p.I}
		}
		if partners[p.I-1] != 0 {
			return Table{}, &StructureError{Kind: DuplicatePartner, Index: p.I}
		}
		if partners[p.J-1] != 0 {
			return Table{}, &StructureError{Kind: DuplicatePartner, Index: p.J}
		}
		partners[p.I-1] = p.J
		partners[p.J-1] = p.I
	}
	return New([]byte(sequence), partners), nil
}
