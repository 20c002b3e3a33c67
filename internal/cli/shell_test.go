package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr string
	}{
		{"plain words", "list", []string{"list"}, ""},
		{"collapses whitespace", "remove \t  a@b.com ", []string{"remove", "a@b.com"}, ""},
		{"double quotes", `add --name "John Doe"`, []string{"add", "--name", "John Doe"}, ""},
		{"single quotes keep backslash", `search 'a\b'`, []string{"search", `a\b`}, ""},
		{"empty quoted argument", `add --name "" --email x`, []string{"add", "--name", "", "--email", "x"}, ""},
		{"escaped space", `search John\ Doe`, []string{"search", "John Doe"}, ""},
		{"quote inside word", `search O"'"Brien`, []string{"search", "O'Brien"}, ""},
		{"trailing comment", "list # show everything", []string{"list"}, ""},
		{"unterminated quote", `add --name "John`, nil, "closing quote"},
		{"trailing backslash", `search x\`, nil, "escape character"},
		{"empty line", "", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitLine(tt.line)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLine(t *testing.T) {
	long := strings.Repeat("x", maxLineBytes+1)
	r := bufio.NewReaderSize(strings.NewReader("first\r\n"+long+"\nlast"), 16)

	line, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	_, err = readLine(r)
	assert.ErrorIs(t, err, ErrLineTooLong)

	line, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "last", line, "the line after an oversized one is intact")

	_, err = readLine(r)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSearchQuery(t *testing.T) {
	assert.Equal(t, "john doe", searchQuery([]string{"john", "doe"}, fieldsOf("", "", "", "corp")))
	assert.Equal(t, "corp", searchQuery(nil, fieldsOf("", "", "", "corp")))
	assert.Equal(t, "mail", searchQuery(nil, fieldsOf("", "mail", "123", "corp")))
	assert.Equal(t, "", searchQuery(nil, fieldsOf("", "", "", "")))
}
