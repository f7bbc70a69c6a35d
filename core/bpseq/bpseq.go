// core/bpseq/bpseq.go
package bpseq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rnamotif-core/pairing"
)

// Read parses whitespace-separated "index base partner" lines. Blank
// lines and '#' comments are skipped. Declared indices must run 1..N in
// order; the in-memory constructor is forgiving, the file format is not.
func Read(r io.Reader) ([]pairing.Entry, error) {
	sc := bufio.NewScanner(r)
	var entries []pairing.Entry
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("bpseq: line %d: want 3 columns, got %d", ln, len(f))
		}
		idx, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("bpseq: line %d: bad index: %v", ln, err)
		}
		if len(f[1]) != 1 {
			return nil, fmt.Errorf("bpseq: line %d: base must be a single character, got %q", ln, f[1])
		}
		partner, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("bpseq: line %d: bad partner: %v", ln, err)
		}
		if idx != len(entries)+1 {
			return nil, fmt.Errorf("bpseq: line %d: index %d out of order (want %d)", ln, idx, len(entries)+1)
		}
		if partner < 0 {
			return nil, fmt.Errorf("bpseq: line %d: negative partner %d", ln, partner)
		}
		entries = append(entries, pairing.Entry{Index: idx, Base: f[1][0], Partner: partner})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("bpseq: no entries")
	}
	return entries, nil
}

// Write emits one "index base partner" line per entry.
func Write(w io.Writer, entries []pairing.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d %c %d\n", e.Index, e.Base, e.Partner); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile reads a BPSEQ file; "-" means stdin.
func ReadFile(path string) ([]pairing.Entry, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh)
}

// WriteFile writes entries to path; "-" means stdout.
func WriteFile(path string, entries []pairing.Entry) error {
	if path == "-" {
		return Write(os.Stdout, entries)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, entries); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
