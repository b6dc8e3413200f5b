package charset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCorpus(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("世界"), 0644))

	texts, err := ReadCorpus([]string{a, b})
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, []byte("hello"), texts[0])
	assert.Equal(t, []byte("世界"), texts[1])
}

func TestReadCorpus_UnreadablePathFailsNamingIt(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	texts, err := ReadCorpus([]string{missing})
	assert.Nil(t, texts)
	require.Error(t, err)

	var corpusErr *CorpusReadError
	require.ErrorAs(t, err, &corpusErr)
	assert.Equal(t, missing, corpusErr.Path)
	assert.Contains(t, err.Error(), missing)
}

func TestReadCorpus_Empty(t *testing.T) {
	texts, err := ReadCorpus(nil)
	require.NoError(t, err)
	assert.Empty(t, texts)
}
