package deprel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnqualifiedDependency(t *testing.T) {
	got, err := Parse([]string{"libfoo"})
	require.NoError(t, err)
	assert.Equal(t, []Relation{{Name: "libfoo"}}, got)
}

func TestParseSingleComparison(t *testing.T) {
	got, err := Parse([]string{"libfoo>=1.2"})
	require.NoError(t, err)
	assert.Equal(t, []Relation{{Name: "libfoo", Relation: ">=", Version: "1.2"}}, got)
}

func TestParseCommaSeparatedRange(t *testing.T) {
	got, err := Parse([]string{"libfoo>=1.0,<2.0"})
	require.NoError(t, err)
	assert.Equal(t, []Relation{
		{Name: "libfoo", Relation: ">=", Version: "1.0"},
		{Name: "libfoo", Relation: "<", Version: "2.0"},
	}, got)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	got, err := Parse([]string{"", "  ", "// a comment", "# also a comment", "libfoo"})
	require.NoError(t, err)
	assert.Equal(t, []Relation{{Name: "libfoo"}}, got)
}

func TestParseRejectsInvalidSyntax(t *testing.T) {
	_, err := Parse([]string{"123notanident"})
	assert.Error(t, err)
}
