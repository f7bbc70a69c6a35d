// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"rnamotif/internal/pretty"
	"rnamotif/pkg/api"
)

const textHeader = "#kind\tbegin\tend\tlength\tdetail\n"

// WriteText prints one TSV row per motif: kind, outer coordinates,
// length (pairs for stems, loop size for hairpins), and the sequence
// detail. With prettyMode, an ASCII alignment block follows each
// stem-bearing row.
func WriteText(w io.Writer, rep api.ReportV1, header, prettyMode bool) error {
	if header {
		if _, err := io.WriteString(w, textHeader); err != nil {
			return err
		}
	}
	for _, s := range rep.Stems {
		_, err := fmt.Fprintf(w, "stem\t%d\t%d\t%d\t%s/%s\n",
			s.Strand1.Begin, s.Strand2.Begin, len(s.Strand1.Sequence),
			s.Strand1.Sequence, s.Strand2.Sequence)
		if err != nil {
			return err
		}
		if prettyMode {
			if _, err := io.WriteString(w, pretty.RenderStem(s)); err != nil {
				return err
			}
		}
	}
	for _, h := range rep.Hairpins {
		loop := h.End - h.Begin - 1
		_, err := fmt.Fprintf(w, "hairpin\t%d\t%d\t%d\t%s\n",
			h.Begin, h.End, loop, h.Sequence)
		if err != nil {
			return err
		}
	}
	for _, pk := range rep.Pseudoknots {
		_, err := fmt.Fprintf(w, "pseudoknot\t%d\t%d\t0\t[%d,%d]x[%d,%d]\n",
			pk.Stem1.Strand1.Begin, pk.Stem2.Strand2.Begin,
			pk.Stem1.Strand1.Begin, pk.Stem1.Strand2.Begin,
			pk.Stem2.Strand1.Begin, pk.Stem2.Strand2.Begin)
		if err != nil {
			return err
		}
		if prettyMode {
			if _, err := io.WriteString(w, pretty.RenderStem(pk.Stem1)); err != nil {
				return err
			}
			if _, err := io.WriteString(w, pretty.RenderStem(pk.Stem2)); err != nil {
				return err
			}
		}
	}
	return nil
}
