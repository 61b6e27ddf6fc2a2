// Package symtable implements the scanner's symbol table: a lexeme->(class,
// first-seen line) map that keeps insertion order internally but is always
// emitted sorted alphabetically.
package symtable

import (
	"sort"

	"cm/pkg/token"
)

// Entry is a single symbol-table record.
type Entry struct {
	Lexeme    string
	Class     token.Kind // token.KEYWORD or token.ID
	FirstLine int        // 0 means "no first-seen line" (keywords)
}

// Table maps lexemes to their symbol entries. Keywords are pre-populated
// with no first-seen line; identifiers acquire their first-seen line on
// first legitimate occurrence.
type Table struct {
	order    []string
	byLexeme map[string]*Entry
}

// New returns a table pre-populated with the closed keyword set.
func New() *Table {
	t := &Table{byLexeme: make(map[string]*Entry)}
	keywords := make([]string, 0, len(token.Keywords))
	for kw := range token.Keywords {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	for _, kw := range keywords {
		t.addKeyword(kw)
	}
	return t
}

func (t *Table) addKeyword(lexeme string) {
	if _, ok := t.byLexeme[lexeme]; ok {
		return
	}
	e := &Entry{Lexeme: lexeme, Class: token.KEYWORD}
	t.byLexeme[lexeme] = e
	t.order = append(t.order, lexeme)
}

// AddIdentifier inserts lexeme as an ID entry with first-seen line if it is
// not already present. A lexeme that is already a keyword is left alone.
func (t *Table) AddIdentifier(lexeme string, line int) {
	if _, ok := t.byLexeme[lexeme]; ok {
		return
	}
	e := &Entry{Lexeme: lexeme, Class: token.ID, FirstLine: line}
	t.byLexeme[lexeme] = e
	t.order = append(t.order, lexeme)
}

// Delete removes lexeme from the table if it is present as an ID entry.
// Keywords can never be deleted: a retraction can only ever target an
// identifier that turned out not to be a real token.
func (t *Table) Delete(lexeme string) {
	e, ok := t.byLexeme[lexeme]
	if !ok || e.Class != token.ID {
		return
	}
	delete(t.byLexeme, lexeme)
	for i, l := range t.order {
		if l == lexeme {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Has reports whether lexeme is currently in the table.
func (t *Table) Has(lexeme string) bool {
	_, ok := t.byLexeme[lexeme]
	return ok
}

// Sorted returns every entry sorted alphabetically by lexeme, the order in
// which symbol_table.txt is rendered.
func (t *Table) Sorted() []Entry {
	lexemes := make([]string, 0, len(t.order))
	for l := range t.byLexeme {
		lexemes = append(lexemes, l)
	}
	sort.Strings(lexemes)
	entries := make([]Entry, 0, len(lexemes))
	for _, l := range lexemes {
		entries = append(entries, *t.byLexeme[l])
	}
	return entries
}
