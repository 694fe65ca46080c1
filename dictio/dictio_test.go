package dictio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTSV(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.tsv")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadTSV(t *testing.T) {
	path := writeTSV(t, "으니\tEC\t\tNUL\n"+
		"었다\tEF\t었/EP+다/EF\t\t120\t80\n"+
		"\tEC\n"+ // missing word, dropped
		"broken row with no pos tab\n")

	entries, err := LoadTSV(path, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "으니", entries[0].Word)
	require.Equal(t, "EC", entries[0].Pos)
	require.Equal(t, "NUL", entries[0].Phoneme)

	require.Equal(t, "었다", entries[1].Word)
	require.True(t, entries[1].HasFreq)
	require.Equal(t, 120.0, entries[1].Spoken)
	require.Equal(t, 80.0, entries[1].Writing)
}

func TestLoadTSVMissingFile(t *testing.T) {
	_, err := LoadTSV(filepath.Join(t.TempDir(), "nope.tsv"), nil)
	require.ErrorIs(t, err, ErrMissingResource)
}
