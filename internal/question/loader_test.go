package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "questions.json", `[
  {"id": 1, "level": "A1", "topic": "colors", "tr": "Kırmızı bir arabam var",
   "en": "I have a red car", "keywords": ["red", "car"], "word_count": 5}
]`)
	qs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, sample[0], qs[0])
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
- id: 3
  level: B1
  topic: food
  tr: Muz severim
  en: I like bananas
  keywords: [bananas]
`)
	qs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "I like bananas", qs[0].EN)
	assert.Equal(t, []string{"bananas"}, qs[0].Keywords)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.json", `{"id": 1}`))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "invalid.yml", "- id: 4\n  en: ''\n"))
	assert.Error(t, err)
}
