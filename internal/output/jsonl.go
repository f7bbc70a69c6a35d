// internal/output/jsonl.go
package output

import (
	"bufio"
	"encoding/json"
	"io"

	"rnamotif/pkg/api"
)

// WriteJSONL streams one motif object per line, each wrapped in its kind
// key ({"stem": ...}, {"hairpin": ...}, {"pseudoknot": ...}).
func WriteJSONL(w io.Writer, rep api.ReportV1) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, s := range rep.Stems {
		if err := enc.Encode(api.StemLineV1{Stem: s}); err != nil {
			return err
		}
	}
	for _, h := range rep.Hairpins {
		if err := enc.Encode(api.HairpinLineV1{Hairpin: h}); err != nil {
			return err
		}
	}
	for _, pk := range rep.Pseudoknots {
		if err := enc.Encode(api.PseudoknotLineV1{Pseudoknot: pk}); err != nil {
			return err
		}
	}
	return bw.Flush()
}
