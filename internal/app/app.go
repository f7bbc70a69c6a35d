// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"rnamotif-core/bpseq"
	"rnamotif-core/dotbracket"
	"rnamotif-core/motif"
	"rnamotif-core/pairing"
	"rnamotif/internal/annotation"
	"rnamotif/internal/cli"
	"rnamotif/internal/output"
	"rnamotif/internal/version"
)

// Run parses argv, loads one structure, scans it, and writes the report.
// Exit codes: 0 ok, --no-match-exit-code when no requested motif was
// found, 2 usage/input errors, 3 write failures.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("rnamotif")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "rnamotif version %s\n", version.Version)
		return 0
	}

	table, err := loadTable(opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := pairing.Check(table); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	sc := motif.New(motif.Config{MinLoop: opts.MinLoop})
	var (
		stems []motif.Stem
		hps   []motif.Hairpin
		pks   []motif.Pseudoknot
	)
	if opts.Wants(cli.MotifStems) {
		if stems, err = sc.Stems(table); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if opts.Wants(cli.MotifHairpins) {
		if hps, err = sc.Hairpins(table); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if opts.Wants(cli.MotifPseudoknots) {
		if pks, err = sc.Pseudoknots(table); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	rep := output.BuildReport(table, stems, hps, pks)
	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, rep)
	case "jsonl":
		err = output.WriteJSONL(outw, rep)
	default:
		err = output.WriteText(outw, rep, opts.Header, opts.Pretty)
	}
	if err == nil {
		err = outw.Flush()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	if len(stems)+len(hps)+len(pks) == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// loadTable builds the pairing table from whichever input source the
// options selected.
func loadTable(opts cli.Options, stderr io.Writer) (pairing.Table, error) {
	switch {
	case opts.BpseqFile != "":
		entries, err := bpseq.ReadFile(opts.BpseqFile)
		if err != nil {
			return pairing.Table{}, err
		}
		return pairing.FromBpseqEntries(entries), nil
	case opts.JSONFile != "":
		rec, err := annotation.ReadFile(opts.JSONFile)
		if err != nil {
			return pairing.Table{}, err
		}
		all := rec.DotBracket.AllChains
		if n := strings.Count(all.Sequence, annotation.ChainSeparator); n > 0 && !opts.Quiet {
			fmt.Fprintf(stderr, "WARN: joining %d chains into one table\n", n+1)
		}
		seq, str := all.Joined()
		return dotbracket.Parse(seq, str)
	default:
		return dotbracket.Parse(opts.Sequence, opts.Structure)
	}
}
