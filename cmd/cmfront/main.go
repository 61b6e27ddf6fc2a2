// Command cmfront is the file-I/O shell around the CM scanner and parser:
// it reads input.txt from the working directory and writes the five
// report files, overwriting any that already exist.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"cm/pkg/parser"
	"cm/pkg/parsetree"
	"cm/pkg/scanner"
	"cm/pkg/symtable"
	"cm/pkg/token"
	"cm/pkg/utils"
)

func main() {
	fullPath, err := utils.Resolve("input.txt")
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot resolve input.txt:", err)
		os.Exit(1)
	}

	src, err := os.ReadFile(fullPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: Cannot open input.txt")
		os.Exit(1)
	}

	sc := scanner.New(src)
	tokens := sc.ConsumeAll()

	if err := writeTokens(tokens); err != nil {
		fmt.Fprintln(os.Stderr, "write tokens.txt:", err)
		os.Exit(1)
	}
	if err := writeLexErrors(sc.Errors()); err != nil {
		fmt.Fprintln(os.Stderr, "write lexical_errors.txt:", err)
		os.Exit(1)
	}
	if err := writeSymbols(sc.Symbols()); err != nil {
		fmt.Fprintln(os.Stderr, "write symbol_table.txt:", err)
		os.Exit(1)
	}

	p := parser.New(tokens)
	tree := p.Parse()

	if err := writeParseTree(tree); err != nil {
		fmt.Fprintln(os.Stderr, "write parse_tree.txt:", err)
		os.Exit(1)
	}
	if err := writeSyntaxErrors(p.Errors()); err != nil {
		fmt.Fprintln(os.Stderr, "write syntax_errors.txt:", err)
		os.Exit(1)
	}
}

// writeTokens groups tokens by line and writes one line per source line
// that produced at least one token, in ascending line order.
func writeTokens(tokens []token.Token) error {
	byLine := make(map[int][]string)
	for _, t := range tokens {
		if t.Kind == token.EOF {
			continue
		}
		byLine[t.Line] = append(byLine[t.Line], fmt.Sprintf("(%s, %s)", t.Kind, t.Lexeme))
	}

	lines := make([]int, 0, len(byLine))
	for l := range byLine {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	f, err := os.Create("tokens.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintf(w, "%d. %s\n", l, strings.Join(byLine[l], " "))
	}
	return w.Flush()
}

func writeLexErrors(errs []scanner.LexError) error {
	f, err := os.Create("lexical_errors.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if len(errs) == 0 {
		fmt.Fprintln(w, "No lexical errors found.")
	} else {
		for _, e := range errs {
			fmt.Fprintf(w, "%d. (%s, %s)\n", e.Line, e.Thrown, e.Message)
		}
	}
	return w.Flush()
}

func writeSymbols(tbl *symtable.Table) error {
	f, err := os.Create("symbol_table.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, e := range tbl.Sorted() {
		fmt.Fprintf(w, "%d.\t%s\n", i+1, e.Lexeme)
	}
	return w.Flush()
}

func writeParseTree(tree *parsetree.Node) error {
	f, err := os.Create("parse_tree.txt")
	if err != nil {
		return err
	}
	defer f.Close()
	return parsetree.Write(f, tree)
}

func writeSyntaxErrors(errs []string) error {
	f, err := os.Create("syntax_errors.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if len(errs) == 0 {
		fmt.Fprintln(w, "No syntax errors.")
	} else {
		for _, e := range errs {
			fmt.Fprintln(w, e)
		}
	}
	return w.Flush()
}
