package model

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
)

const (
	borderSegment = " -----"
	rowStart      = ":"
	cellAlive     = "  1  :"
	cellDead      = "  0  :"
	titlePrefix   = "After "
	titleSuffix   = " : "
)

// ErrMalformedSnapshot is returned by ParseSnapshots for text that is not
// in the render format.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Snapshot is one rendered grid with the title it was printed under, if any
type Snapshot struct {
	Title string
	Grid  *Grid
}

// Render produces the text form of g: a blank line, a border, then each
// row followed by a border.
func Render(g *Grid) string {
	var (
		b      strings.Builder
		border = strings.Repeat(borderSegment, g.cols)
	)

	b.WriteString("\n")
	b.WriteString(border)
	b.WriteString("\n")
	for row := range g.rows {
		b.WriteString(rowStart)
		for col := range g.cols {
			if g.cells[row][col] {
				b.WriteString(cellAlive)
			} else {
				b.WriteString(cellDead)
			}
		}
		b.WriteString("\n")
		b.WriteString(border)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTitled renders g under an "After <title> :" heading
func RenderTitled(title string, g *Grid) string {
	return "\n" + titlePrefix + title + titleSuffix + "\n" + Render(g)
}

// ParseSnapshots reads every grid in text produced by Render and
// RenderTitled, in order of appearance.
func ParseSnapshots(text string) ([]Snapshot, error) {
	var (
		snaps   []Snapshot
		rows    [][]bool
		title   string
		scanner = bufio.NewScanner(strings.NewReader(text))
		lineNum = 0
	)

	flush := func() {
		if len(rows) == 0 {
			return
		}
		g := NewGrid(len(rows), len(rows[0]))
		for r, cells := range rows {
			copy(g.cells[r], cells)
		}
		snaps = append(snaps, Snapshot{Title: title, Grid: g})
		rows = nil
		title = ""
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, titlePrefix) && strings.HasSuffix(line, titleSuffix):
			flush()
			title = strings.TrimSuffix(strings.TrimPrefix(line, titlePrefix), titleSuffix)
		case strings.HasPrefix(line, borderSegment):
			if strings.Trim(line, borderSegment) != "" {
				return nil, errors.Wrapf(ErrMalformedSnapshot, "[ParseSnapshots] line %d: bad border", lineNum)
			}
		case strings.HasPrefix(line, rowStart):
			cells, err := parseRow(strings.TrimPrefix(line, rowStart))
			if err != nil {
				return nil, errors.Wrapf(err, "[ParseSnapshots] line %d", lineNum)
			}
			if len(rows) > 0 && len(cells) != len(rows[0]) {
				return nil, errors.Wrapf(ErrMalformedSnapshot,
					"[ParseSnapshots] line %d: %d cells, want %d", lineNum, len(cells), len(rows[0]))
			}
			rows = append(rows, cells)
		default:
			return nil, errors.Wrapf(ErrMalformedSnapshot, "[ParseSnapshots] line %d: unexpected %q", lineNum, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseSnapshots] failed to scan text")
	}
	flush()

	return snaps, nil
}

func parseRow(body string) ([]bool, error) {
	if len(body) == 0 || len(body)%len(cellAlive) != 0 {
		return nil, errors.Wrapf(ErrMalformedSnapshot, "row length %d", len(body))
	}
	cells := make([]bool, 0, len(body)/len(cellAlive))
	for i := 0; i < len(body); i += len(cellAlive) {
		switch body[i : i+len(cellAlive)] {
		case cellAlive:
			cells = append(cells, true)
		case cellDead:
			cells = append(cells, false)
		default:
			return nil, errors.Wrapf(ErrMalformedSnapshot, "cell %q", body[i:i+len(cellAlive)])
		}
	}
	return cells, nil
}
