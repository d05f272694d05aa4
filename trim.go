package sstruct

import (
	"strings"

	"github.com/samber/lo"

	"github.com/KimNorgaard/go-sstruct/internal/lexer"
)

// trimBlankLines drops the leading and trailing runs of whitespace-only
// lines. Blank lines between non-blank ones are kept. Whitespace is the same
// set the line classifier uses.
func trimBlankLines(lines []string) []string {
	return lo.DropRightWhile(lo.DropWhile(lines, lexer.IsBlank), lexer.IsBlank)
}

func joinLines(lines []string, trim bool) string {
	if trim {
		lines = trimBlankLines(lines)
	}
	return strings.Join(lines, "\n")
}
