package token

// Type is the kind of a classified line.
type Type string

// Line is a single input line together with the way it was classified.
type Line struct {
	Type   Type
	Number int
	Text   string

	// Separator and Name are only set for SEPARATOR and NEXT lines.
	Separator string
	Name      string

	// Comment holds the text after '#' for COMMENT lines.
	Comment string
}

const (
	// Lines seen while no field is open
	COMMENT    Type = "COMMENT"    // # note
	SEPARATOR  Type = "SEPARATOR"  // --- name
	EMPTY      Type = "EMPTY"      // blank or whitespace only
	UNEXPECTED Type = "UNEXPECTED" // anything else

	// Lines seen while a field is open
	END  Type = "END"  // ---
	NEXT Type = "NEXT" // --- other
	DATA Type = "DATA" // any other line
)
