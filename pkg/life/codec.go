package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	cellSep  = ";"
	coordSep = ","
)

// ErrMalformed is returned by Decode when the layout text cannot be parsed.
var ErrMalformed = errors.New("malformed layout")

// Encode renders cells as "x,y" pairs joined by semicolons, e.g. "0,0;1,0;-1,2".
func Encode(cells *CellSet) string {
	list := cells.Cells()
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = strconv.Itoa(c.X) + coordSep + strconv.Itoa(c.Y)
	}
	return strings.Join(parts, cellSep)
}

// Decode parses text produced by Encode into a new set. Blank input yields an
// empty set. Empty entries between separators are skipped. On error no cells
// are returned.
func Decode(text string) (*CellSet, error) {
	out := NewCellSet()
	text = strings.TrimSpace(text)
	if text == "" {
		return out, nil
	}
	for i, tok := range strings.Split(text, cellSep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		c, err := parseCell(tok)
		if err != nil {
			return nil, fmt.Errorf("entry %d %q: %w", i, tok, err)
		}
		out.Add(c)
	}
	return out, nil
}

func parseCell(tok string) (Cell, error) {
	xs, ys, ok := strings.Cut(tok, coordSep)
	if !ok {
		return Cell{}, ErrMalformed
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Cell{}, ErrMalformed
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Cell{}, ErrMalformed
	}
	return Cell{X: x, Y: y}, nil
}
