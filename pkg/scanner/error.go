package scanner

import "fmt"

// LexError is a lexical-error record: (line, thrown_text, message).
type LexError struct {
	Line    int
	Thrown  string
	Message string
}

func (e LexError) String() string {
	return fmt.Sprintf("%d. (%s, %s)", e.Line, e.Thrown, e.Message)
}
