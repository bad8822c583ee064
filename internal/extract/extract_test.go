package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer"), 0644))

	text, err := Text(path)
	require.NoError(t, err)
	assert.Equal(t, "Python developer", text)
}

func TestTextUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	_, err := Text(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestTextMissingFile(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestTextCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	_, err := Text(path)
	assert.Error(t, err)
}
