// internal/output/json.go
package output

import (
	"io"

	"rnamotif/internal/jsonutil"
	"rnamotif/pkg/api"
)

// WriteJSON writes the full report as one pretty-indented v1 object.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}
