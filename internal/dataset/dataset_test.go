package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	want := []types.Contact{
		{Name: "John Doe", Email: "john@example.com", PhoneNumber: "1234567", Company: "ABC Corp"},
		{Name: "Bare", Email: "bare@example.com"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "jsonl",
			file: "seed.jsonl",
			content: `{"name":"John Doe","email":"john@example.com","phone_number":"1234567","company":"ABC Corp"}
{"name":"Bare","email":"bare@example.com"}
`,
		},
		{
			name: "json array",
			file: "seed.json",
			content: `[
  {"name":"John Doe","email":"john@example.com","phone_number":"1234567","company":"ABC Corp"},
  {"name":"Bare","email":"bare@example.com"}
]`,
		},
		{
			name: "yaml sequence",
			file: "seed.yaml",
			content: `- name: John Doe
  email: john@example.com
  phone_number: "1234567"
  company: ABC Corp
- name: Bare
  email: bare@example.com
`,
		},
		{
			name:    "yml extension, upper case",
			file:    "SEED.YML",
			content: "- {name: John Doe, email: john@example.com, phone_number: \"1234567\", company: ABC Corp}\n- {name: Bare, email: bare@example.com}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "seed.csv", "name,email\n"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "broken.json", "{not json"))
	assert.Error(t, err)
}

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	content := strings.Join([]string{
		`{"name":"A","email":"a@example.com"}`,
		``,
		`not json at all`,
		`{"name":"B","email":"b@example.com","future_field":true}`,
	}, "\n")

	got, err := ReadJSONL(writeFile(t, "seed.jsonl", content))
	require.NoError(t, err)
	assert.Equal(t, []types.Contact{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
	}, got)
}

func TestWriteJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contacts.jsonl")

	require.NoError(t, WriteJSONL(path, types.DefaultSeed()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSeed(), got)

	// Overwrite replaces the file and leaves no temp files behind.
	require.NoError(t, WriteJSONL(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
