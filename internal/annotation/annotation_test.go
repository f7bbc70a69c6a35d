package annotation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "dbn": {
    "all_chains": {
      "bseq": "GGGAAACCC&ACGU",
      "sstr": "(((...)))&([)]"
    }
  }
}`

func TestRead(t *testing.T) {
	rec, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	seq, str := rec.DotBracket.AllChains.Joined()
	assert.Equal(t, "GGGAAACCCACGU", seq)
	assert.Equal(t, "(((...)))([)]", str)

	chains, err := rec.DotBracket.AllChains.Split()
	require.NoError(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, Chain{Sequence: "GGGAAACCC", Structure: "(((...)))"}, chains[0])
	assert.Equal(t, Chain{Sequence: "ACGU", Structure: "([)]"}, chains[1])
}

func TestReadMissingBlock(t *testing.T) {
	_, err := Read(strings.NewReader(`{"dbn": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all_chains")
}

func TestReadBadJSON(t *testing.T) {
	_, err := Read(strings.NewReader(`{`))
	require.Error(t, err)
}

func TestSplitMismatchedChains(t *testing.T) {
	c := Chain{Sequence: "AAA&CCC", Structure: "......"}
	_, err := c.Split()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chains")
}
