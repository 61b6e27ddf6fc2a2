package scanner

import "cm/pkg/token"

// Category is the result of classifying a single source byte.
type Category int

const (
	CatWhitespace Category = iota
	CatLetter
	CatDigit
	CatUnderscore
	CatSymbol
	CatSlash // comment-start hint '/'
	CatStar  // stray-comment hint '*'
	CatOther
)

// classify maps a single byte to its lexical category. Source is treated as
// ASCII; any byte outside the recognized ranges, including high bytes, is
// CatOther.
func classify(b byte) Category {
	switch {
	case isWhitespace(b):
		return CatWhitespace
	case isLetter(b):
		return CatLetter
	case isDigit(b):
		return CatDigit
	case b == '_':
		return CatUnderscore
	case b == '/':
		return CatSlash
	case b == '*':
		return CatStar
	case isSymbolByte(b):
		return CatSymbol
	default:
		return CatOther
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentByte(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}

func isSymbolByte(b byte) bool {
	return token.Symbols[b]
}

// isResyncByte reports whether b could plausibly begin a new token, the
// stopping condition for panic-mode recovery.
func isResyncByte(b byte) bool {
	return isWhitespace(b) || isLetter(b) || isDigit(b) || b == '_' || isSymbolByte(b) || b == '/' || b == '*'
}
