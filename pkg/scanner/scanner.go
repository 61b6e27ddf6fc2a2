// Package scanner implements the CM lexical analyzer: a hand-written
// deterministic finite automaton over source bytes that classifies
// lexemes, maintains a symbol table, and recovers from malformed input via
// panic-mode skipping, including retroactive invalidation of an identifier
// adjacent to an illegal character.
package scanner

import (
	"cm/pkg/symtable"
	"cm/pkg/token"
)

// Retraction is the one-slot signal a Scanner latches when an illegal
// character proves that the immediately preceding ID token was never a
// real token. The consumer reads it once, via TakeRetraction, and deletes
// the named token from the line it was emitted on.
type Retraction struct {
	Lexeme string
	Line   int
}

// identRecord remembers the most recently emitted ID token so the scanner
// can detect an illegal character immediately adjacent to it. It is set
// only right after an ID token is emitted and cleared by every path that
// emits another token, skips a comment or records an error. Whitespace
// leaves it set; the end-position check in handleIllegal keeps a
// whitespace-separated identifier from matching.
type identRecord struct {
	lexeme string
	line   int
	endPos int
}

// Scanner is a pull iterator over a source buffer. Repeated calls to Next
// eventually return EOF and continue to return EOF thereafter.
type Scanner struct {
	src  []byte
	pos  int
	line int

	errs []LexError
	syms *symtable.Table

	lastIdent *identRecord
	retract   *Retraction
}

// New returns a Scanner positioned at the start of src.
func New(src []byte) *Scanner {
	return &Scanner{
		src:  src,
		pos:  0,
		line: 1,
		syms: symtable.New(),
	}
}

// Errors returns the ordered list of lexical errors observed so far.
func (s *Scanner) Errors() []LexError {
	return s.errs
}

// Symbols returns the scanner's current symbol table.
func (s *Scanner) Symbols() *symtable.Table {
	return s.syms
}

// TakeRetraction returns the latched retraction signal, if any, and clears
// it. It must be checked once after every call to Next.
func (s *Scanner) TakeRetraction() (Retraction, bool) {
	if s.retract == nil {
		return Retraction{}, false
	}
	r := *s.retract
	s.retract = nil
	return r, true
}

// ConsumeAll drains the scanner to EOF, applying any retraction signals to
// its own accumulated token list, and returns the final corrected sequence
// (including the trailing EOF token).
func (s *Scanner) ConsumeAll() []token.Token {
	var toks []token.Token
	for {
		t := s.Next()
		if r, ok := s.TakeRetraction(); ok {
			for i := len(toks) - 1; i >= 0; i-- {
				if toks[i].Kind == token.ID && toks[i].Lexeme == r.Lexeme && toks[i].Line == r.Line {
					toks = append(toks[:i], toks[i+1:]...)
					break
				}
			}
		}
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (s *Scanner) peek(k int) byte {
	if s.pos+k >= len(s.src) {
		return 0
	}
	return s.src[s.pos+k]
}

func (s *Scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
	}
	return c
}

func (s *Scanner) col() int {
	// column of s.pos: distance back to the last newline (or start of src)
	i := s.pos
	col := 1
	for i > 0 && s.src[i-1] != '\n' {
		i--
		col++
	}
	return col
}

func (s *Scanner) addError(line int, thrown, message string) {
	s.errs = append(s.errs, LexError{Line: line, Thrown: thrown, Message: message})
}

// panicRecover consumes input until reaching a byte that could plausibly
// begin a new token, appending the skipped text to the last recorded
// error's thrown text.
func (s *Scanner) panicRecover() {
	start := s.pos
	for s.pos < len(s.src) && !isResyncByte(s.peek(0)) {
		s.advance()
	}
	if s.pos > start && len(s.errs) > 0 {
		s.errs[len(s.errs)-1].Thrown += string(s.src[start:s.pos])
	}
}

func (s *Scanner) mkEOF() token.Token {
	return token.Token{Kind: token.EOF, Lexeme: "EOF", Line: s.line, Col: s.col(), EndPos: s.pos}
}

// Next returns the next token, side-effecting the error list, symbol
// table, and retraction latch as needed.
func (s *Scanner) Next() token.Token {
	for {
		if s.pos >= len(s.src) {
			s.lastIdent = nil
			return s.mkEOF()
		}

		c := s.peek(0)

		// Stray closing comment outside any comment.
		if c == '*' && s.peek(1) == '/' {
			line := s.line
			s.advance()
			s.advance()
			s.addError(line, "*/", "Stray closing comment")
			s.lastIdent = nil
			continue
		}

		if isWhitespace(c) {
			s.advance()
			continue
		}

		if c == '/' {
			switch s.peek(1) {
			case '/':
				s.advance()
				s.advance()
				for s.pos < len(s.src) {
					ch := s.peek(0)
					if ch == '\n' || ch == '\f' {
						break
					}
					s.advance()
				}
				s.lastIdent = nil
				continue
			case '*':
				startLine := s.line
				s.advance()
				s.advance()
				closed := false
				for s.pos < len(s.src) {
					if s.peek(0) == '*' && s.peek(1) == '/' {
						s.advance()
						s.advance()
						closed = true
						break
					}
					s.advance()
				}
				if !closed {
					s.addError(startLine, "/* Unclosed ...", "Open comment at EOF")
					s.lastIdent = nil
					return s.mkEOF()
				}
				s.lastIdent = nil
				continue
			default:
				line, col := s.line, s.col()
				s.advance()
				s.lastIdent = nil
				return token.Token{Kind: token.SYMBOL, Lexeme: "/", Line: line, Col: col, EndPos: s.pos}
			}
		}

		if isLetter(c) || c == '_' {
			return s.scanIdentifier()
		}

		if isDigit(c) {
			if tok, ok := s.scanNumber(); ok {
				return tok
			}
			continue
		}

		if c == '=' {
			line, col := s.line, s.col()
			s.advance()
			if s.peek(0) == '=' {
				s.advance()
				s.lastIdent = nil
				return token.Token{Kind: token.SYMBOL, Lexeme: "==", Line: line, Col: col, EndPos: s.pos}
			}
			s.lastIdent = nil
			return token.Token{Kind: token.SYMBOL, Lexeme: "=", Line: line, Col: col, EndPos: s.pos}
		}

		if isSymbolByte(c) {
			line, col := s.line, s.col()
			s.advance()
			s.lastIdent = nil
			return token.Token{Kind: token.SYMBOL, Lexeme: string(c), Line: line, Col: col, EndPos: s.pos}
		}

		s.handleIllegal()
	}
}

func (s *Scanner) scanIdentifier() token.Token {
	line, col := s.line, s.col()
	start := s.pos
	for s.pos < len(s.src) && isIdentByte(s.peek(0)) {
		s.advance()
	}
	lexeme := string(s.src[start:s.pos])
	end := s.pos

	if token.IsKeyword(lexeme) {
		s.lastIdent = nil
		return token.Token{Kind: token.KEYWORD, Lexeme: lexeme, Line: line, Col: col, EndPos: end}
	}

	s.syms.AddIdentifier(lexeme, line)
	s.lastIdent = &identRecord{lexeme: lexeme, line: line, endPos: end}
	return token.Token{Kind: token.ID, Lexeme: lexeme, Line: line, Col: col, EndPos: end}
}

// scanNumber consumes a digit run and returns (token, true) on a valid NUM,
// or (zero, false) after recording a "Malformed number" error and
// performing panic recovery.
func (s *Scanner) scanNumber() (token.Token, bool) {
	line, col := s.line, s.col()
	start := s.pos
	first := s.peek(0)
	s.advance()

	if first == '0' && isDigit(s.peek(0)) {
		s.consumeIdentTail()
		s.addError(line, string(s.src[start:s.pos]), "Malformed number")
		s.panicRecover()
		s.lastIdent = nil
		return token.Token{}, false
	}

	for s.pos < len(s.src) && isDigit(s.peek(0)) {
		s.advance()
	}

	if c := s.peek(0); isLetter(c) || c == '_' {
		s.consumeIdentTail()
		s.addError(line, string(s.src[start:s.pos]), "Malformed number")
		s.panicRecover()
		s.lastIdent = nil
		return token.Token{}, false
	}

	s.lastIdent = nil
	return token.Token{Kind: token.NUM, Lexeme: string(s.src[start:s.pos]), Line: line, Col: col, EndPos: s.pos}, true
}

func (s *Scanner) consumeIdentTail() {
	for s.pos < len(s.src) && isIdentByte(s.peek(0)) {
		s.advance()
	}
}

// handleIllegal implements the illegal-character protocol with retroactive
// identifier invalidation.
func (s *Scanner) handleIllegal() {
	p := s.pos
	line := s.line

	left := ""
	i := p - 1
	for i >= 0 && isIdentByte(s.src[i]) {
		i--
	}
	leftStart := i + 1
	if leftStart <= p-1 {
		left = string(s.src[leftStart:p])
	}

	bad := s.advance()
	thrown := left + string(bad)

	rightStart := s.pos
	for s.pos < len(s.src) && isIdentByte(s.peek(0)) {
		s.advance()
	}
	thrown += string(s.src[rightStart:s.pos])

	s.addError(line, thrown, "Illegal character")
	s.panicRecover()

	if s.lastIdent != nil && s.lastIdent.lexeme == left && s.lastIdent.endPos == p && left != "" {
		s.retract = &Retraction{Lexeme: left, Line: s.lastIdent.line}
		s.syms.Delete(left)
	}
	s.lastIdent = nil
}
