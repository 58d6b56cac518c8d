package aoc

import "strings"

// Lines splits doc on "\n". A trailing newline yields a final empty line,
// and an empty doc is a single empty line.
func Lines(doc string) []string {
	return strings.Split(doc, "\n")
}

// ForLinesY calls onLine for each line of doc, stopping at the first error.
// The y value is the row number, starting with 0.
func ForLinesY(doc string, onLine func(y int, line string) error) error {
	for y, line := range Lines(doc) {
		if err := onLine(y, line); err != nil {
			return err
		}
	}
	return nil
}

// ForLines calls onLine for each line of doc, stopping at the first error.
func ForLines(doc string, onLine func(line string) error) error {
	return ForLinesY(doc, func(_ int, line string) error { return onLine(line) })
}

// NonEmptyLines returns the lines of doc with surrounding whitespace
// trimmed, skipping the ones that end up empty.
func NonEmptyLines(doc string) []string {
	var out []string
	for _, line := range Lines(doc) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
