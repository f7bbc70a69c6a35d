// pkg/api/motifs_v1.go
package api

// StrandV1 is a continuous fragment of the structure, 1-based inclusive.
// A strand reported 3'→5' has Begin > End and its sequence reversed.
// Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type StrandV1 struct {
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

// StemV1 is the stable schema for a stem: Strand1 runs 5'→3', Strand2
// is its antiparallel complement reported 3'→5'.
type StemV1 struct {
	Strand1 StrandV1 `json:"strand1"`
	Strand2 StrandV1 `json:"strand2"`
}

// HairpinV1 spans the closing pair inclusive, loop and all.
type HairpinV1 struct {
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

// PseudoknotV1 is an unordered pair of crossing stems.
type PseudoknotV1 struct {
	Stem1 StemV1 `json:"stem1"`
	Stem2 StemV1 `json:"stem2"`
}

// ReportV1 is the stable JSON schema for one full motif scan.
type ReportV1 struct {
	Stems       []StemV1       `json:"stems"`
	Hairpins    []HairpinV1    `json:"hairpins"`
	Pseudoknots []PseudoknotV1 `json:"pseudoknots"`
}

// JSONL wrappers: one motif per line, keyed by kind.
type StemLineV1 struct {
	Stem StemV1 `json:"stem"`
}
type HairpinLineV1 struct {
	Hairpin HairpinV1 `json:"hairpin"`
}
type PseudoknotLineV1 struct {
	Pseudoknot PseudoknotV1 `json:"pseudoknot"`
}
