package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("test")
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opts, err := parse(t, "--bpseq", "x.bpseq")
	require.NoError(t, err)
	assert.Equal(t, 3, opts.MinLoop)
	assert.Equal(t, "text", opts.Output)
	assert.True(t, opts.Header)
	assert.Equal(t, 1, opts.NoMatchExitCode)
	assert.Equal(t, []string{"stems", "hairpins", "pseudoknots"}, opts.Motifs)
	assert.True(t, opts.Wants(MotifStems))
}

func TestInputSourceValidation(t *testing.T) {
	_, err := parse(t)
	require.Error(t, err)

	_, err = parse(t, "--bpseq", "a", "--json", "b")
	require.Error(t, err)

	_, err = parse(t, "--sequence", "ACGU")
	require.Error(t, err)

	_, err = parse(t, "--bpseq", "a", "--sequence", "ACGU", "--structure", "....")
	require.Error(t, err)

	opts, err := parse(t, "--sequence", "ACGU", "--structure", "....")
	require.NoError(t, err)
	assert.Equal(t, "ACGU", opts.Sequence)
}

func TestMotifListValidation(t *testing.T) {
	opts, err := parse(t, "--bpseq", "a", "--motifs", "stems,pseudoknots")
	require.NoError(t, err)
	assert.True(t, opts.Wants(MotifStems))
	assert.False(t, opts.Wants(MotifHairpins))
	assert.True(t, opts.Wants(MotifPseudoknots))

	_, err = parse(t, "--bpseq", "a", "--motifs", "loops")
	require.Error(t, err)

	_, err = parse(t, "--bpseq", "a", "--motifs", ",")
	require.Error(t, err)
}

func TestKnobValidation(t *testing.T) {
	_, err := parse(t, "--bpseq", "a", "--min-loop", "0")
	require.Error(t, err)

	_, err = parse(t, "--bpseq", "a", "--output", "xml")
	require.Error(t, err)

	_, err = parse(t, "--bpseq", "a", "--output", "json", "--pretty")
	require.Error(t, err)

	opts, err := parse(t, "--bpseq", "a", "--no-header", "--min-loop", "4")
	require.NoError(t, err)
	assert.False(t, opts.Header)
	assert.Equal(t, 4, opts.MinLoop)
}

func TestVersionShortCircuits(t *testing.T) {
	opts, err := parse(t, "-v")
	require.NoError(t, err)
	assert.True(t, opts.Version)
}
