package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rnamotif/pkg/api"
)

func TestRenderStem(t *testing.T) {
	s := api.StemV1{
		Strand1: api.StrandV1{Begin: 1, End: 3, Sequence: "GGG"},
		Strand2: api.StrandV1{Begin: 9, End: 7, Sequence: "CCC"},
	}
	got := RenderStem(s)
	want := "#    1 GGG    3\n" +
		"#      |||\n" +
		"#    9 CCC    7\n"
	assert.Equal(t, want, got)
}
