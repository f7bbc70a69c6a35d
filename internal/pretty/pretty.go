// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"rnamotif/pkg/api"
)

const linePrefix = "# "

// RenderStem draws a stem as an ASCII alignment block: the 5'→3' strand
// over pairing bars over the antiparallel 3'→5' strand.
//
//	#    1 GGG    3
//	#      |||
//	#    9 CCC    7
func RenderStem(s api.StemV1) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%4d %s %4d\n", linePrefix, s.Strand1.Begin, s.Strand1.Sequence, s.Strand1.End)
	fmt.Fprintf(&b, "%s     %s\n", linePrefix, strings.Repeat("|", len(s.Strand1.Sequence)))
	fmt.Fprintf(&b, "%s%4d %s %4d\n", linePrefix, s.Strand2.Begin, s.Strand2.Sequence, s.Strand2.End)
	return b.String()
}
