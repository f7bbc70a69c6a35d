// internal/annotation/annotation.go
package annotation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ChainSeparator splits chains inside bseq/sstr strings.
const ChainSeparator = "&"

// Chain carries the two derived strings the core consumes: a nucleotide
// sequence and a matching dot-bracket structure. Multi-chain records
// join the strings with '&'.
type Chain struct {
	Sequence  string `json:"bseq"`
	Structure string `json:"sstr"`
}

// Record mirrors the subset of the external structure-annotation tool's
// JSON output that this tool reads. The tool's native format is not
// parsed; only the derived dot-bracket block is.
type Record struct {
	DotBracket struct {
		AllChains Chain `json:"all_chains"`
	} `json:"dbn"`
}

// Joined returns the chain's sequence and structure with the '&'
// separators removed, ready for the dot-bracket codec.
func (c Chain) Joined() (sequence, structure string) {
	return strings.ReplaceAll(c.Sequence, ChainSeparator, ""),
		strings.ReplaceAll(c.Structure, ChainSeparator, "")
}

// Split breaks a multi-chain block into per-chain pieces. The sequence
// and structure must agree on the number of chains.
func (c Chain) Split() ([]Chain, error) {
	seqs := strings.Split(c.Sequence, ChainSeparator)
	strs := strings.Split(c.Structure, ChainSeparator)
	if len(seqs) != len(strs) {
		return nil, fmt.Errorf("annotation: %d sequence chains vs %d structure chains", len(seqs), len(strs))
	}
	out := make([]Chain, 0, len(seqs))
	for i := range seqs {
		out = append(out, Chain{Sequence: seqs[i], Structure: strs[i]})
	}
	return out, nil
}

// Read decodes one annotation record.
func Read(r io.Reader) (Record, error) {
	var rec Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("annotation: %v", err)
	}
	if rec.DotBracket.AllChains.Sequence == "" || rec.DotBracket.AllChains.Structure == "" {
		return Record{}, fmt.Errorf("annotation: record has no dbn.all_chains block")
	}
	return rec, nil
}

// ReadFile reads an annotation JSON file; "-" means stdin.
func ReadFile(path string) (Record, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh)
}
