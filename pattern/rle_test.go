package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gliderGrid = [][]uint8{
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
}

func TestDecodeRLEGlider(t *testing.T) {
	pat, err := DecodeRLE("#C This is a glider.\nx = 3, y = 3\nbo$2bo$3o!")
	require.NoError(t, err)
	require.Equal(t, 3, pat.Rows)
	require.Equal(t, 3, pat.Cols)
	require.Equal(t, gliderGrid, pat.Grid)
}

func TestDecodeRLEGliderWithRuleClause(t *testing.T) {
	for _, text := range []string{
		"#C This is a glider.\nx = 3, y = 3, type = b3/s23\nbo$2bo$3o!",
		"x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!",
		"x=3,y=3\nrule = b3/s23\nbo$2bo$3o!",
	} {
		pat, err := DecodeRLE(text)
		require.NoError(t, err, "input: %s", text)
		require.Equal(t, gliderGrid, pat.Grid)
	}
}

func TestDecodeRLERejectsNonConwayRule(t *testing.T) {
	_, err := DecodeRLE("x = 3, y = 3, type = B36/S23\nbo$2bo$3o!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-standard rule")

	_, err = DecodeRLE("x = 3, y = 3, rule = b3/s8\nbo$2bo$3o!")
	require.Error(t, err)
}

func TestDecodeRLERejectsMalformedDimensions(t *testing.T) {
	_, err := DecodeRLE("#C This is a glider.\nx = x, y = 3\nbo$2bo$3o!")
	require.Error(t, err)
}

func TestDecodeRLERejectsBodyBeforeDimensions(t *testing.T) {
	_, err := DecodeRLE("bo$2bo$3o!\nx = 3, y = 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions unknown")
}

func TestDecodeRLERejectsEmptyInput(t *testing.T) {
	_, err := DecodeRLE("#C nothing but comments\n")
	require.Error(t, err)
}

func TestDecodeRLEMissingRowsStayDead(t *testing.T) {
	// fewer $-separated rows than the declared y: trailing rows are
	// simply all dead, not an error
	pat, err := DecodeRLE("x = 3, y = 3\nbo!")
	require.NoError(t, err)
	require.Equal(t, [][]uint8{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, pat.Grid)
}

func TestDecodeRLEStopsAtTerminator(t *testing.T) {
	pat, err := DecodeRLE("x = 3, y = 3\nbo$2bo$3o!3o$3o")
	require.NoError(t, err)
	require.Equal(t, gliderGrid, pat.Grid)
}

func TestDecodeRLEBodyAcrossMultipleLines(t *testing.T) {
	pat, err := DecodeRLE("x = 3, y = 3\nbo$\n2bo$\n3o!")
	require.NoError(t, err)
	require.Equal(t, gliderGrid, pat.Grid)
}

func TestDecodeRLERunCounts(t *testing.T) {
	pat, err := DecodeRLE("x = 5, y = 4\n5o$2b3o$2$")
	require.NoError(t, err)
	require.Equal(t, [][]uint8{
		{1, 1, 1, 1, 1},
		{0, 0, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}, pat.Grid)
}

func TestDecodeRLEContentBeyondDeclaredDimensions(t *testing.T) {
	_, err := DecodeRLE("x = 2, y = 1\n3o!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds declared")
}
