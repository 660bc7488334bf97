package core

import "sort"

// Pattern is a named seed layout. Cells are [x, y] offsets from the anchor.
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Unnamed or empty patterns are ignored.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered patterns alphabetically.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Pattern{Name: "block", Description: "2x2 still life", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}})
	Register(Pattern{Name: "blinker", Description: "period 2 oscillator", Cells: [][2]int{{1, 0}, {1, 1}, {1, 2}}})
	Register(Pattern{Name: "glider", Description: "diagonal spaceship", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}})
	Register(Pattern{Name: "r-pentomino", Description: "methuselah, stabilises after 1103 generations", Cells: [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}})
	Register(Pattern{Name: "acorn", Description: "methuselah, stabilises after 5206 generations", Cells: [][2]int{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}}})
	Register(Pattern{Name: "gosper-gun", Description: "glider gun, period 30", Cells: [][2]int{
		{24, 0},
		{22, 1}, {24, 1},
		{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
		{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
		{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
		{10, 6}, {16, 6}, {24, 6},
		{11, 7}, {15, 7},
		{12, 8}, {13, 8},
	}})
}
