// internal/convertcli/options.go
package convertcli

import (
	"errors"
	"flag"
	"fmt"

	"rnamotif/internal/version"
)

// Options holds the converter's flags.
type Options struct {
	// Forward input (dot-bracket → BPSEQ)
	JSONFile  string
	Sequence  string
	Structure string

	// Reverse input (BPSEQ → dot-bracket)
	BpseqFile string
	Reverse   bool

	OutFile string
	Verify  bool
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: convert between dot-bracket and BPSEQ notations

Forward (default): --sequence/--structure or --json → BPSEQ lines.
Reverse (--reverse): --bpseq → sequence and dot-bracket lines.

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

	fs.StringVar(&opt.Sequence, "sequence", "", "inline nucleotide sequence [*]")
	fs.StringVar(&opt.Structure, "structure", "", "inline dot-bracket structure [*]")
	fs.StringVar(&opt.JSONFile, "json", "", "structure-annotation JSON file ('-' = stdin) [*]")
	fs.StringVar(&opt.BpseqFile, "bpseq", "", "BPSEQ file ('-' = stdin), with --reverse [*]")
	fs.BoolVar(&opt.Reverse, "reverse", false, "convert BPSEQ → dot-bracket [false]")
	fs.StringVar(&opt.OutFile, "out", "-", "output file ('-' = stdout) [-]")
	fs.BoolVar(&opt.Verify, "verify", false, "round-trip the conversion and fail on mismatch [false]")
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

	if opt.Reverse {
		if opt.BpseqFile == "" {
			return opt, errors.New("--reverse requires --bpseq")
		}
		if opt.JSONFile != "" || opt.Sequence != "" || opt.Structure != "" {
			return opt, errors.New("--reverse conflicts with --json/--sequence/--structure")
		}
		return opt, nil
	}

	if opt.BpseqFile != "" {
		return opt, errors.New("--bpseq input needs --reverse")
	}
	usingInline := opt.Sequence != "" || opt.Structure != ""
	switch {
	case usingInline && opt.JSONFile != "":
		return opt, errors.New("--json conflicts with --sequence/--structure")
	case usingInline && (opt.Sequence == "" || opt.Structure == ""):
		return opt, errors.New("--sequence and --structure must be supplied together")
	case !usingInline && opt.JSONFile == "":
		return opt, errors.New("provide --json or --sequence/--structure")
	}
	return opt, nil
}
