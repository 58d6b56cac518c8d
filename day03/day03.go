// Package day03 reads an engine schematic: a grid of numbers, symbols and
// '.' cells. Numbers touching a symbol, diagonally included, are part
// numbers, and a '*' touching exactly two numbers is a gear.
package day03

import (
	aoc "github.com/maisem/aoc2023"
)

// Number is a horizontal run of digits in the schematic.
type Number struct {
	Value int
	Cells []aoc.Pt
}

func isSymbol(b byte) bool {
	return b != '.' && !aoc.IsDigit(b)
}

// Numbers returns every number in g, row by row.
func Numbers(g aoc.Grid[byte]) []Number {
	var out []Number
	for y, row := range g {
		for x := 0; x < len(row); {
			if !aoc.IsDigit(row[x]) {
				x++
				continue
			}
			var n Number
			for ; x < len(row) && aoc.IsDigit(row[x]); x++ {
				n.Value = n.Value*10 + aoc.MustGet(aoc.Digit(rune(row[x])))
				n.Cells = append(n.Cells, aoc.Pt{X: x, Y: y})
			}
			out = append(out, n)
		}
	}
	return out
}

// Neighbors returns the cells around n for which keep returns true, each
// at most once.
func (n Number) Neighbors(g aoc.Grid[byte], keep func(byte) bool) []aoc.Pt {
	seen := map[aoc.Pt]bool{}
	var out []aoc.Pt
	for _, c := range n.Cells {
		c.ForNeighbors(func(p aoc.Pt) bool {
			if v, ok := g.AtOk(p); ok && keep(v) && !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			return true
		})
	}
	return out
}

// IsPart reports whether n touches a symbol.
func (n Number) IsPart(g aoc.Grid[byte]) bool {
	return len(n.Neighbors(g, isSymbol)) > 0
}

// Gears returns the '*' cells touching exactly two numbers, with those
// numbers.
func Gears(g aoc.Grid[byte]) map[aoc.Pt][2]int {
	touching := map[aoc.Pt][]int{}
	for _, n := range Numbers(g) {
		for _, p := range n.Neighbors(g, func(b byte) bool { return b == '*' }) {
			touching[p] = append(touching[p], n.Value)
		}
	}
	gears := map[aoc.Pt][2]int{}
	for p, nums := range touching {
		if len(nums) == 2 {
			gears[p] = [2]int{nums[0], nums[1]}
		}
	}
	return gears
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func Part1(doc string) (int, error) {
	g := aoc.ParseGrid(doc)
	if aoc.Debugging() {
		aoc.Debug("schematic", "size", g.Size(), "hash", g.Hash())
	}
	var parts []int
	for _, n := range Numbers(g) {
		if n.IsPart(g) {
			parts = append(parts, n.Value)
		}
	}
	return aoc.Sum(parts...), nil
}

// want=467835
func Part2(doc string) (int, error) {
	g := aoc.ParseGrid(doc)
	var ratios []int
	for _, nums := range Gears(g) {
		ratios = append(ratios, aoc.Product(nums[:]...))
	}
	return aoc.Sum(ratios...), nil
}
