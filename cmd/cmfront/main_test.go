package main

import (
	"os"
	"strings"
	"testing"

	"cm/pkg/parser"
	"cm/pkg/scanner"
)

// writeAll runs the full pipeline over src and writes the five report
// files into the current working directory, exactly as main does.
func writeAll(t *testing.T, src string) {
	t.Helper()
	sc := scanner.New([]byte(src))
	tokens := sc.ConsumeAll()
	if err := writeTokens(tokens); err != nil {
		t.Fatalf("writeTokens: %v", err)
	}
	if err := writeLexErrors(sc.Errors()); err != nil {
		t.Fatalf("writeLexErrors: %v", err)
	}
	if err := writeSymbols(sc.Symbols()); err != nil {
		t.Fatalf("writeSymbols: %v", err)
	}
	p := parser.New(tokens)
	tree := p.Parse()
	if err := writeParseTree(tree); err != nil {
		t.Fatalf("writeParseTree: %v", err)
	}
	if err := writeSyntaxErrors(p.Errors()); err != nil {
		t.Fatalf("writeSyntaxErrors: %v", err)
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func TestCleanRun(t *testing.T) {
	t.Chdir(t.TempDir())
	writeAll(t, "int x; x = 2 + 3;")

	tokens := readFile(t, "tokens.txt")
	expected := "1. (KEYWORD, int) (ID, x) (SYMBOL, ;) (ID, x) (SYMBOL, =) (NUM, 2) (SYMBOL, +) (NUM, 3) (SYMBOL, ;)\n"
	if tokens != expected {
		t.Errorf("tokens.txt mismatch\ngot:      %q\nexpected: %q", tokens, expected)
	}

	if got := readFile(t, "lexical_errors.txt"); got != "No lexical errors found.\n" {
		t.Errorf("lexical_errors.txt: expected sentinel, got %q", got)
	}

	symbols := readFile(t, "symbol_table.txt")
	expectedSymbols := strings.Join([]string{
		"1.\tbreak",
		"2.\telse",
		"3.\tfor",
		"4.\tif",
		"5.\tint",
		"6.\treturn",
		"7.\tvoid",
		"8.\tx",
		"",
	}, "\n")
	if symbols != expectedSymbols {
		t.Errorf("symbol_table.txt mismatch\ngot:      %q\nexpected: %q", symbols, expectedSymbols)
	}
}

func TestRetractionNotVisibleInOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	writeAll(t, "int invalid@x;")

	tokens := readFile(t, "tokens.txt")
	if strings.Contains(tokens, "invalid") {
		t.Errorf("retracted identifier leaked into tokens.txt: %q", tokens)
	}
	if !strings.Contains(tokens, "(SYMBOL, ;)") {
		t.Errorf("semicolon after the bad construct must still be emitted: %q", tokens)
	}

	lexErrs := readFile(t, "lexical_errors.txt")
	if !strings.Contains(lexErrs, "1. (invalid@x, Illegal character)") {
		t.Errorf("lexical_errors.txt mismatch: %q", lexErrs)
	}

	symbols := readFile(t, "symbol_table.txt")
	if strings.Contains(symbols, "invalid") {
		t.Errorf("retracted identifier leaked into symbol_table.txt: %q", symbols)
	}
}

func TestParseTreeAndSyntaxSentinel(t *testing.T) {
	t.Chdir(t.TempDir())
	writeAll(t, "void main(void) { int a; a = 0; return; }")

	tree := readFile(t, "parse_tree.txt")
	lines := strings.Split(tree, "\n")
	if lines[0] != "Program" {
		t.Errorf("parse_tree.txt must start with Program, got %q", lines[0])
	}
	if !strings.Contains(tree, "└── ") || !strings.Contains(tree, "├── ") {
		t.Error("parse_tree.txt must use box-drawing connectors")
	}
	if !strings.Contains(tree, "epsilon") {
		t.Error("parse_tree.txt must contain explicit epsilon leaves")
	}

	if got := readFile(t, "syntax_errors.txt"); got != "No syntax errors.\n" {
		t.Errorf("syntax_errors.txt: expected sentinel, got %q", got)
	}
}

func TestSyntaxErrorsWritten(t *testing.T) {
	t.Chdir(t.TempDir())
	writeAll(t, "void main(void) { int a; a = 1 }")

	got := readFile(t, "syntax_errors.txt")
	if !strings.Contains(got, "Expected ';'") {
		t.Errorf("syntax_errors.txt missing the recorded error: %q", got)
	}
}

func TestEmptyLinesOmittedFromTokens(t *testing.T) {
	t.Chdir(t.TempDir())
	writeAll(t, "int a;\n\n// only a comment\nint b;\n")

	tokens := readFile(t, "tokens.txt")
	expected := "1. (KEYWORD, int) (ID, a) (SYMBOL, ;)\n4. (KEYWORD, int) (ID, b) (SYMBOL, ;)\n"
	if tokens != expected {
		t.Errorf("tokens.txt mismatch\ngot:      %q\nexpected: %q", tokens, expected)
	}
}
