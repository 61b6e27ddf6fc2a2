package symtable

import (
	"reflect"
	"testing"

	"cm/pkg/token"
)

func TestSymbolTable(t *testing.T) {
	t.Run("PrepopulatedKeywords", func(t *testing.T) {
		tbl := New()
		var lexemes []string
		for _, e := range tbl.Sorted() {
			if e.Class != token.KEYWORD {
				t.Errorf("%q: expected KEYWORD class, got %v", e.Lexeme, e.Class)
			}
			if e.FirstLine != 0 {
				t.Errorf("%q: keywords carry no first-seen line, got %d", e.Lexeme, e.FirstLine)
			}
			lexemes = append(lexemes, e.Lexeme)
		}
		expected := []string{"break", "else", "for", "if", "int", "return", "void"}
		if !reflect.DeepEqual(lexemes, expected) {
			t.Errorf("expected %v, got %v", expected, lexemes)
		}
	})

	t.Run("AddIdentifier", func(t *testing.T) {
		tbl := New()
		tbl.AddIdentifier("count", 3)
		if !tbl.Has("count") {
			t.Fatal("identifier not added")
		}
		for _, e := range tbl.Sorted() {
			if e.Lexeme == "count" {
				if e.Class != token.ID {
					t.Errorf("expected ID class, got %v", e.Class)
				}
				if e.FirstLine != 3 {
					t.Errorf("expected first-seen line 3, got %d", e.FirstLine)
				}
			}
		}
	})

	t.Run("FirstSeenLineWins", func(t *testing.T) {
		tbl := New()
		tbl.AddIdentifier("x", 2)
		tbl.AddIdentifier("x", 9)
		for _, e := range tbl.Sorted() {
			if e.Lexeme == "x" && e.FirstLine != 2 {
				t.Errorf("expected first-seen line 2 to be kept, got %d", e.FirstLine)
			}
		}
	})

	t.Run("AddKeywordLexemeIsNoop", func(t *testing.T) {
		tbl := New()
		tbl.AddIdentifier("if", 5)
		for _, e := range tbl.Sorted() {
			if e.Lexeme == "if" && e.Class != token.KEYWORD {
				t.Error("keyword entry overwritten by identifier insert")
			}
		}
	})

	t.Run("DeleteIdentifier", func(t *testing.T) {
		tbl := New()
		tbl.AddIdentifier("bogus", 1)
		tbl.Delete("bogus")
		if tbl.Has("bogus") {
			t.Error("identifier not deleted")
		}
	})

	t.Run("DeleteKeywordIsNoop", func(t *testing.T) {
		tbl := New()
		tbl.Delete("return")
		if !tbl.Has("return") {
			t.Error("keyword must never be deletable")
		}
	})

	t.Run("SortedOrder", func(t *testing.T) {
		tbl := New()
		tbl.AddIdentifier("zz", 1)
		tbl.AddIdentifier("aa", 2)
		tbl.AddIdentifier("main", 3)
		var lexemes []string
		for _, e := range tbl.Sorted() {
			lexemes = append(lexemes, e.Lexeme)
		}
		expected := []string{"aa", "break", "else", "for", "if", "int", "main", "return", "void", "zz"}
		if !reflect.DeepEqual(lexemes, expected) {
			t.Errorf("expected %v, got %v", expected, lexemes)
		}
	})
}
