package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayers(t *testing.T) {
	got, err := ParsePlayers("markus, sven")
	require.NoError(t, err)
	assert.Equal(t, []string{"markus", "sven"}, got)

	_, err = ParsePlayers("")
	assert.ErrorIs(t, err, ErrEmptyPlayer)

	_, err = ParsePlayers("a,,b")
	assert.ErrorIs(t, err, ErrEmptyPlayer)

	_, err = ParsePlayers("a,b,c,d,e,f,g")
	assert.ErrorIs(t, err, ErrPlayerCount)
}

func TestNewSheetRowMajor(t *testing.T) {
	in := numbered("p", Cells)
	s, err := NewSheet("markus", in)
	require.NoError(t, err)
	assert.Equal(t, "p 0", s.Grid[0][0])
	assert.Equal(t, "p 4", s.Grid[0][4])
	assert.Equal(t, "p 5", s.Grid[1][0])
	assert.Equal(t, "p 24", s.Grid[4][4])
	assert.Equal(t, in, s.Phrases())

	_, err = NewSheet("markus", in[:24])
	assert.Error(t, err)
}

func TestExportSheetText(t *testing.T) {
	s, err := NewSheet("sven", numbered("p", Cells))
	require.NoError(t, err)
	out := ExportSheetText(s)
	assert.Equal(t, "# sven\np 0 | p 1 | p 2 | p 3 | p 4", out[:len("# sven\np 0 | p 1 | p 2 | p 3 | p 4")])
	assert.Contains(t, out, "\np 20 | p 21 | p 22 | p 23 | p 24")
}
