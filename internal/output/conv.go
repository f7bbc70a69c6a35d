// internal/output/conv.go
package output

import (
	"rnamotif-core/motif"
	"rnamotif-core/pairing"
	"rnamotif/pkg/api"
)

// ToAPIStem converts a domain stem to the stable wire schema (v1).
// Strand1 reads 5'→3'; Strand2 is reported antiparallel (3'→5', so
// Begin > End and the fragment is reversed).
func ToAPIStem(t pairing.Table, s motif.Stem) api.StemV1 {
	return api.StemV1{
		Strand1: api.StrandV1{
			Begin:    s.Left,
			End:      s.InnerLo(),
			Sequence: t.Fragment(s.Left, s.InnerLo()),
		},
		Strand2: api.StrandV1{
			Begin:    s.Right,
			End:      s.InnerHi(),
			Sequence: reverse(t.Fragment(s.InnerHi(), s.Right)),
		},
	}
}

// ToAPIHairpin spans the closing pair inclusive, loop and all.
func ToAPIHairpin(t pairing.Table, h motif.Hairpin) api.HairpinV1 {
	lo, hi := h.Stem.InnerLo(), h.Stem.InnerHi()
	return api.HairpinV1{Begin: lo, End: hi, Sequence: t.Fragment(lo, hi)}
}

func ToAPIPseudoknot(t pairing.Table, pk motif.Pseudoknot) api.PseudoknotV1 {
	return api.PseudoknotV1{Stem1: ToAPIStem(t, pk.A), Stem2: ToAPIStem(t, pk.B)}
}

// BuildReport assembles the v1 report. Slices are always non-nil so the
// JSON renders empty arrays, not nulls.
func BuildReport(t pairing.Table, stems []motif.Stem, hairpins []motif.Hairpin, pks []motif.Pseudoknot) api.ReportV1 {
	rep := api.ReportV1{
		Stems:       make([]api.StemV1, 0, len(stems)),
		Hairpins:    make([]api.HairpinV1, 0, len(hairpins)),
		Pseudoknots: make([]api.PseudoknotV1, 0, len(pks)),
	}
	for _, s := range stems {
		rep.Stems = append(rep.Stems, ToAPIStem(t, s))
	}
	for _, h := range hairpins {
		rep.Hairpins = append(rep.Hairpins, ToAPIHairpin(t, h))
	}
	for _, pk := range pks {
		rep.Pseudoknots = append(rep.Pseudoknots, ToAPIPseudoknot(t, pk))
	}
	return rep
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
