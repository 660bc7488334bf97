package life

import "sort"

// Cell identifies one position on the unbounded integer lattice.
type Cell struct {
	X, Y int
}

// Neighbors calls fn for each of the eight cells surrounding c.
func (c Cell) Neighbors(fn func(Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			fn(Cell{X: c.X + dx, Y: c.Y + dy})
		}
	}
}

// CellSet is a sparse set of live cells. The zero value is not usable; call
// NewCellSet.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet returns a set holding the provided cells.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Len reports the number of live cells.
func (s *CellSet) Len() int { return len(s.cells) }

// Contains reports whether c is alive.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Add marks c alive.
func (s *CellSet) Add(c Cell) { s.cells[c] = struct{}{} }

// Remove marks c dead.
func (s *CellSet) Remove(c Cell) { delete(s.cells, c) }

// Toggle flips c and reports whether it is alive afterwards.
func (s *CellSet) Toggle(c Cell) bool {
	if s.Contains(c) {
		s.Remove(c)
		return false
	}
	s.Add(c)
	return true
}

// Clear removes every cell.
func (s *CellSet) Clear() {
	for c := range s.cells {
		delete(s.cells, c)
	}
}

// Each calls fn for every live cell until fn returns false. Iteration order is
// unspecified and the set must not be mutated from fn.
func (s *CellSet) Each(fn func(Cell) bool) {
	for c := range s.cells {
		if !fn(c) {
			return
		}
	}
}

// Cells returns the live cells ordered by row, then column.
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Equal reports whether both sets hold the same cells.
func (s *CellSet) Equal(o *CellSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for c := range s.cells {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle holding every live cell. ok is false
// for an empty set.
func (s *CellSet) Bounds() (min, max Cell, ok bool) {
	for c := range s.cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}
