package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-sstruct/internal/token"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input         string
		expectedType  token.Type
		expectedSep   string
		expectedName  string
		expectedComnt string
	}{
		{"# a note", token.COMMENT, "", "", " a note"},
		{"   #indented", token.COMMENT, "", "", "indented"},
		{"#", token.COMMENT, "", "", ""},
		{"--- field1", token.SEPARATOR, "---", "field1", ""},
		{"---field1", token.SEPARATOR, "---", "field1", ""},
		{"---   spaced name   ", token.SEPARATOR, "---", "spaced name", ""},
		{"---", token.SEPARATOR, "---", "", ""},
		{"=== x", token.SEPARATOR, "===", "x", ""},
		{"alpha beta", token.SEPARATOR, "alpha", "beta", ""},
		{"alpha", token.SEPARATOR, "alpha", "", ""},
		{"-->name", token.SEPARATOR, "-->", "name", ""},
		{"--- -odd", token.SEPARATOR, "---", "-odd", ""},
		{"", token.EMPTY, "", "", ""},
		{" \t ", token.EMPTY, "", "", ""},
		{"  indented text", token.UNEXPECTED, "", "", ""},
		{"\u00a0", token.EMPTY, "", "", ""},
		{"\v", token.EMPTY, "", "", ""},
		{"\u3000\ufeff\u2028", token.EMPTY, "", "", ""},
		{"\u3000indented", token.UNEXPECTED, "", "", ""},
		{"\u00a0text", token.UNEXPECTED, "", "", ""},
		{"\u00a0# spaced", token.COMMENT, "", "", " spaced"},
		{"---\u00a0name\u3000", token.SEPARATOR, "---", "name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			line := Classify(7, tt.input)
			require.Equal(t, tt.expectedType, line.Type)
			require.Equal(t, tt.expectedSep, line.Separator)
			require.Equal(t, tt.expectedName, line.Name)
			require.Equal(t, tt.expectedComnt, line.Comment)
			require.Equal(t, 7, line.Number)
			require.Equal(t, tt.input, line.Text)
		})
	}
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank(" \t\v\f"))
	require.True(t, IsBlank("\u00a0\u3000\ufeff"))
	require.False(t, IsBlank(" x "))
	require.False(t, IsBlank("\xff"))
}

func TestSeparator_Classify(t *testing.T) {
	tests := []struct {
		tok          string
		input        string
		expectedType token.Type
		expectedName string
	}{
		{"---", "---", token.END, ""},
		{"---", "---  \t", token.END, ""},
		{"---", "--- next", token.NEXT, "next"},
		{"---", "---next", token.DATA, ""},
		{"-", "-1", token.DATA, ""},
		{"-", "- 1", token.NEXT, "1"},
		{"---", "---   next field  ", token.NEXT, "next field"},
		{"---", "--- -odd", token.NEXT, "-odd"},
		{"---", "----", token.DATA, ""},
		{"---", "=== other", token.DATA, ""},
		{"---", " ---", token.DATA, ""},
		{"---", "# not a comment here", token.DATA, ""},
		{"---", "", token.DATA, ""},
		{"alpha", "alpha", token.END, ""},
		{"alpha", "alpha beta", token.NEXT, "beta"},
		{"alpha", "alphabet", token.DATA, ""},
		{"***", "***", token.END, ""},
		{"***", "*** star", token.NEXT, "star"},
		{"***", "aaa", token.DATA, ""},
		{"...", "abc", token.DATA, ""},
		{"...", "...", token.END, ""},
		{"$$", "$$ cash", token.NEXT, "cash"},
		{"[]", "[] list", token.NEXT, "list"},
		{"[]", "[", token.DATA, ""},
		{"+?", "+?", token.END, ""},
		{"+?", "++", token.DATA, ""},
		{`\|`, `\| pipe`, token.NEXT, "pipe"},
		{`\|`, `| pipe`, token.DATA, ""},
		{"\xff\xfe", "\xff\xfe", token.END, ""},
		{"\xff\xfe", "\xff\xfe name", token.NEXT, "name"},
		{"---", "---\u00a0", token.END, ""},
		{"---", "---\v", token.END, ""},
		{"---", "---\u3000next\u3000", token.NEXT, "next"},
		{"---", "---\u00a0next", token.NEXT, "next"},
	}

	for _, tt := range tests {
		t.Run(tt.tok+" "+tt.input, func(t *testing.T) {
			sep := NewSeparator(tt.tok)
			line := sep.Classify(3, tt.input)
			require.Equal(t, tt.expectedType, line.Type)
			require.Equal(t, tt.expectedName, line.Name)
			require.Equal(t, 3, line.Number)
			if line.Type == token.END || line.Type == token.NEXT {
				require.Equal(t, tt.tok, line.Separator)
			}
		})
	}
}
