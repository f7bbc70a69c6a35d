// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"rnamotif-core/motif"
	"rnamotif/internal/version"
)

// Motif kinds accepted by --motifs.
const (
	MotifStems       = "stems"
	MotifHairpins    = "hairpins"
	MotifPseudoknots = "pseudoknots"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input (exactly one source)
	BpseqFile string
	JSONFile  string
	Sequence  string
	Structure string

	// Scanning
	MinLoop int
	Motifs  []string

	// Output
	Output string // text | json | jsonl
	Pretty bool
	Header bool // true unless --no-header

	NoMatchExitCode int
	Quiet           bool
	Version         bool
}

// Wants reports whether a motif kind was requested.
func (o Options) Wants(kind string) bool {
	for _, m := range o.Motifs {
		if m == kind {
			return true
		}
	}
	return false
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: RNA secondary-structure motif scanner

Reads a pairing annotation (BPSEQ, annotation JSON, or an inline
dot-bracket string) and reports stems, hairpin loops and pseudoknots.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var noHeader bool
	var motifList string

	// Input
	fs.StringVar(&opt.BpseqFile, "bpseq", "", "BPSEQ file ('-' = stdin) [*]")
	fs.StringVar(&opt.JSONFile, "json", "", "structure-annotation JSON file ('-' = stdin) [*]")
	fs.StringVar(&opt.Sequence, "sequence", "", "inline nucleotide sequence [*]")
	fs.StringVar(&opt.Structure, "structure", "", "inline dot-bracket structure [*]")

	// Scanning
	fs.IntVar(&opt.MinLoop, "min-loop", motif.DefaultMinLoop, "minimum hairpin loop size [3]")
	fs.StringVar(&motifList, "motifs", "stems,hairpins,pseudoknots", "comma list: stems | hairpins | pseudoknots [all]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "pretty ASCII stem blocks (text) [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no motifs found [1]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	sources := 0
	if opt.BpseqFile != "" {
		sources++
	}
	if opt.JSONFile != "" {
		sources++
	}
	if opt.Sequence != "" || opt.Structure != "" {
		sources++
		if opt.Sequence == "" || opt.Structure == "" {
			return opt, errors.New("--sequence and --structure must be supplied together")
		}
	}
	switch {
	case sources == 0:
		return opt, errors.New("provide --bpseq, --json, or --sequence/--structure")
	case sources > 1:
		return opt, errors.New("--bpseq, --json and --sequence/--structure are mutually exclusive")
	}
	if opt.MinLoop < 1 {
		return opt, errors.New("--min-loop must be ≥ 1")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Pretty && opt.Output != "text" {
		return opt, errors.New("--pretty only applies to --output text")
	}
	for _, m := range strings.Split(motifList, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		switch m {
		case MotifStems, MotifHairpins, MotifPseudoknots:
			opt.Motifs = append(opt.Motifs, m)
		default:
			return opt, fmt.Errorf("invalid motif kind %q", m)
		}
	}
	if len(opt.Motifs) == 0 {
		return opt, errors.New("--motifs selects nothing")
	}
	return opt, nil
}
