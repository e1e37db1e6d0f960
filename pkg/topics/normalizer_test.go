package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirectHits(t *testing.T) {
	n := NewNormalizer("")

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"canonical tag passes through", []string{"housing"}, []string{"housing"}},
		{"case and whitespace trimmed", []string{"  HOUSING "}, []string{"housing"}},
		{"listed synonym", []string{"rent control"}, []string{"housing"}},
		{"multiple inputs dedupe", []string{"housing", "affordable housing", "tenant"}, []string{"housing"}},
		{"output sorted lexicographically", []string{"zoning", "budget", "housing"}, []string{"budget", "housing", "zoning"}},
		{"empty input", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizePartialMatches(t *testing.T) {
	n := NewNormalizer("")

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"synonym embedded in phrase", "downtown bike lane extension", []string{"transportation"}},
		{"word boundary blocks park/parking", "parking garage fees", []string{"transportation"}},
		{"park as a whole word", "new park on elm street", []string{"parks"}},
		{"water infrastructure", "water main replacement", []string{"utilities"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize([]string{tt.in}))
		})
	}
}

func TestNormalizeUnknownTopicsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknown_topics.log")
	n := NewNormalizer(path)

	got := n.Normalize([]string{"quantum municipal synergy"})
	assert.Empty(t, got, "a miss contributes no tag")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quantum municipal synergy")
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer("")
	in := []string{"affordable housing", "bike lanes and sidewalks", "budget"}

	first := n.Normalize(in)
	second := n.Normalize(first)
	assert.Equal(t, first, second, "normalizing canonical output is a fixed point")
}
