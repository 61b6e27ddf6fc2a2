// Command treeview is an optional, interactive companion to cmfront: it
// renders a parse tree as a scrollable monospace grid so a tree too tall
// for a terminal can still be inspected a screenful at a time. It loads
// parse_tree.txt if present, or falls back to scanning and parsing
// input.txt directly.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"cm/pkg/parser"
	"cm/pkg/parsetree"
	"cm/pkg/scanner"
)

const (
	rows       = 40
	cellHeight = 16
)

// face is the fixed-width bitmap font every line is measured with (Draw
// renders through ebitenutil.DebugPrintAt); basicfont.Face7x13 is the same
// font family ebitenutil's own debug
// text uses internally, made explicit here so line width (and therefore
// the horizontal scroll range) can be computed up front.
var face = basicfont.Face7x13

type Game struct {
	lines    []string
	maxWidth int // widest rendered line, in pixels, per font.MeasureString

	scrollRow int
	scrollCol int // horizontal scroll, in pixel columns
}

func newGame(lines []string) *Game {
	g := &Game{lines: lines}
	for _, l := range lines {
		w := font.MeasureString(face, l).Ceil()
		if w > g.maxWidth {
			g.maxWidth = w
		}
	}
	return g
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.scrollRows(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.scrollRows(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.scrollRows(rows)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scrollRows(-rows)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.scrollCol += 7 * 8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.scrollCol -= 7 * 8
		if g.scrollCol < 0 {
			g.scrollCol = 0
		}
	}
	if max := g.maxWidth - 7*40; g.scrollCol > max && max > 0 {
		g.scrollCol = max
	}
	return nil
}

func (g *Game) scrollRows(delta int) {
	g.scrollRow += delta
	if g.scrollRow < 0 {
		g.scrollRow = 0
	}
	if max := len(g.lines) - rows; g.scrollRow > max && max > 0 {
		g.scrollRow = max
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	for row := 0; row < rows; row++ {
		idx := g.scrollRow + row
		if idx >= len(g.lines) {
			break
		}
		line := g.lines[idx]
		runes := []rune(line)
		skip := g.scrollCol / 7
		if skip < len(runes) {
			line = string(runes[skip:])
		} else {
			line = ""
		}
		ebitenutil.DebugPrintAt(screen, line, 4, row*cellHeight+2)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 900, rows * cellHeight
}

func main() {
	path := "parse_tree.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	lines, err := loadLines(path)
	if err != nil {
		log.Fatalf("treeview: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(900, rows*cellHeight)
	ebiten.SetWindowTitle("CM parse tree viewer")

	if err := ebiten.RunGame(newGame(lines)); err != nil {
		log.Fatal(err)
	}
}

// loadLines reads a pre-rendered tree file, falling back to running the
// scanner and parser over input.txt directly when it is absent.
func loadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
	}

	src, rerr := os.ReadFile("input.txt")
	if rerr != nil {
		return nil, fmt.Errorf("neither %s nor input.txt could be read: %w", path, err)
	}

	sc := scanner.New(src)
	tokens := sc.ConsumeAll()
	p := parser.New(tokens)
	tree := p.Parse()
	return parsetree.Render(tree), nil
}
