// internal/convertapp/app.go
package convertapp

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"rnamotif-core/bpseq"
	"rnamotif-core/dotbracket"
	"rnamotif-core/pairing"
	"rnamotif/internal/annotation"
	"rnamotif/internal/convertcli"
	"rnamotif/internal/version"
)

// Run converts one structure between notations. Exit codes: 0 ok,
// 1 --verify mismatch, 2 usage/input errors, 3 write failures.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := convertcli.NewFlagSet("dbn2bpseq")
	fs.SetOutput(io.Discard)

	opts, err := convertcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "dbn2bpseq version %s\n", version.Version)
		return 0
	}

	if opts.Reverse {
		return runReverse(opts, stdout, stderr)
	}
	return runForward(opts, stdout, stderr)
}

func runForward(opts convertcli.Options, stdout, stderr io.Writer) int {
	seq, str := opts.Sequence, opts.Structure
	if opts.JSONFile != "" {
		rec, err := annotation.ReadFile(opts.JSONFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		seq, str = rec.DotBracket.AllChains.Joined()
	}
	table, err := dotbracket.Parse(seq, str)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := pairing.Check(table); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	entries := table.BpseqEntries()
	if opts.Verify {
		if !pairing.FromBpseqEntries(entries).Equal(table) {
			fmt.Fprintln(stderr, "verify: BPSEQ entries do not decode back to the source table")
			return 1
		}
	}
	if err := writeEntries(opts.OutFile, stdout, entries); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func runReverse(opts convertcli.Options, stdout, stderr io.Writer) int {
	entries, err := bpseq.ReadFile(opts.BpseqFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	table := pairing.FromBpseqEntries(entries)
	if err := pairing.Check(table); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	structure, err := dotbracket.Render(table)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Verify {
		back, err := dotbracket.Parse(table.Sequence(), structure)
		if err != nil || !back.Equal(table) {
			fmt.Fprintln(stderr, "verify: rendered structure does not decode back to the source table")
			return 1
		}
	}
	out := stdout
	if opts.OutFile != "-" {
		fh, err := os.Create(opts.OutFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = fh.Close() }()
		out = fh
	}
	if _, err := fmt.Fprintf(out, "%s\n%s\n", table.Sequence(), structure); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// writeEntries sends BPSEQ lines to stdout or a file.
func writeEntries(path string, stdout io.Writer, entries []pairing.Entry) error {
	if path == "-" {
		return bpseq.Write(stdout, entries)
	}
	return bpseq.WriteFile(path, entries)
}
