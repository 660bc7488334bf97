package life

// Next computes the generation that follows cur under the B3/S23 rule. Only
// live cells and their neighbors are visited, so the cost tracks the
// population rather than any board area. cur is left untouched.
func Next(cur *CellSet) *CellSet {
	counts := make(map[Cell]uint8, cur.Len()*8)
	for c := range cur.cells {
		c.Neighbors(func(n Cell) { counts[n]++ })
	}

	next := NewCellSet()
	for c, n := range counts {
		if n == 3 || (n == 2 && cur.Contains(c)) {
			next.Add(c)
		}
	}
	return next
}

// Status is a snapshot of the simulation counters.
type Status struct {
	Iteration  int
	Population int
	Running    bool
}

// Life runs Conway's Game of Life on an unbounded sparse grid.
type Life struct {
	cells     *CellSet
	running   bool
	iteration int
}

// New returns a paused Life with no live cells.
func New() *Life {
	return &Life{cells: NewCellSet()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Cells exposes the current generation. The returned set is replaced, not
// mutated, by Step.
func (l *Life) Cells() *CellSet { return l.cells }

// Running reports whether ticks advance the simulation.
func (l *Life) Running() bool { return l.running }

// SetRunning starts or pauses the simulation.
func (l *Life) SetRunning(running bool) { l.running = running }

// Iteration returns the number of generations computed since the last reset.
func (l *Life) Iteration() int { return l.iteration }

// Status returns the current counters.
func (l *Life) Status() Status {
	return Status{Iteration: l.iteration, Population: l.cells.Len(), Running: l.running}
}

// Toggle flips the cell at (x, y).
func (l *Life) Toggle(x, y int) bool {
	return l.cells.Toggle(Cell{X: x, Y: y})
}

// Step advances one generation when running. It returns the iteration counter
// and whether a generation was computed.
func (l *Life) Step() (int, bool) {
	if !l.running {
		return l.iteration, false
	}
	return l.Advance(), true
}

// Advance computes one generation regardless of the running flag.
func (l *Life) Advance() int {
	l.cells = Next(l.cells)
	l.iteration++
	return l.iteration
}

// Clear kills every cell, pauses and resets the iteration counter.
func (l *Life) Clear() {
	l.cells = NewCellSet()
	l.running = false
	l.iteration = 0
}

// Replace swaps in cells as the current generation and resets the counter.
func (l *Life) Replace(cells *CellSet) {
	l.cells = cells
	l.iteration = 0
}
