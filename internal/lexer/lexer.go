// Package lexer classifies Simple Struct lines.
package lexer

import (
	"regexp"
	"strings"

	"github.com/KimNorgaard/go-sstruct/internal/token"
)

// ws is the whitespace class used by every rule. RE2's \s is ASCII only;
// this also covers \v, the Unicode space separators and U+FEFF.
const ws = `\s\v\p{Z}\x{FEFF}`

var (
	commentRegexp = regexp.MustCompile(`^[` + ws + `]*#(.*)$`)
	emptyRegexp   = regexp.MustCompile(`^[` + ws + `]*$`)

	// The first alternative takes a leading run of punctuation so that
	// "---name" splits into "---" and "name".
	separatorRegexp = regexp.MustCompile(
		`^([^` + ws + `\p{L}\p{N}]+|[^` + ws + `]+)[` + ws + `]*(.*?)[` + ws + `]*$`)

	// Applied to the rest of a line after the separator token.
	nextRegexp = regexp.MustCompile(`^[` + ws + `]+(.*?)[` + ws + `]*$`)
)

// IsBlank reports whether s is empty or holds only whitespace.
func IsBlank(s string) bool {
	return emptyRegexp.MatchString(s)
}

// Classify returns the classification of a line read while no field is
// open. The checks are applied in order: comment, separator, empty.
func Classify(lno int, text string) token.Line {
	line := token.Line{Number: lno, Text: text}
	if m := commentRegexp.FindStringSubmatch(text); m != nil {
		line.Type = token.COMMENT
		line.Comment = m[1]
		return line
	}
	if m := separatorRegexp.FindStringSubmatch(text); m != nil {
		line.Type = token.SEPARATOR
		line.Separator = m[1]
		line.Name = m[2]
		return line
	}
	if IsBlank(text) {
		line.Type = token.EMPTY
		return line
	}
	line.Type = token.UNEXPECTED
	return line
}

// Separator recognizes the lines that end an open field or chain a sibling
// field using the same token. The token is compared literally, so regexp
// metacharacters and invalid UTF-8 in it have no special meaning.
type Separator struct {
	Token string
}

// NewSeparator returns the Separator for tok.
func NewSeparator(tok string) *Separator {
	return &Separator{Token: tok}
}

// Classify returns the classification of a line read while a field opened
// with this separator is open. The end check wins over the next-field
// check, and a next-field line needs whitespace between token and name.
func (s *Separator) Classify(lno int, text string) token.Line {
	line := token.Line{Number: lno, Text: text}
	rest, ok := strings.CutPrefix(text, s.Token)
	if !ok {
		line.Type = token.DATA
		return line
	}
	if IsBlank(rest) {
		line.Type = token.END
		line.Separator = s.Token
		return line
	}
	if m := nextRegexp.FindStringSubmatch(rest); m != nil {
		line.Type = token.NEXT
		line.Separator = s.Token
		line.Name = m[1]
		return line
	}
	line.Type = token.DATA
	return line
}
