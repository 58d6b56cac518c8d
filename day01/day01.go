// Package day01 recovers calibration values from lines of text: the first
// and last digit on a line, where a digit is either a literal '0'..'9' or
// one of the words "one" through "nine".
package day01

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var (
	// ErrInvalidLine is wrapped by InvalidLineError.
	ErrInvalidLine = errors.New("no digit token in line")

	// ErrUnknownToken is returned by Decode for text that is neither a
	// digit nor a digit word.
	ErrUnknownToken = errors.New("unknown digit token")
)

// InvalidLineError is returned for a non-empty line without any token.
type InvalidLineError struct {
	Line string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidLine, e.Line)
}

// Unwrap returns ErrInvalidLine for errors.Is.
func (e *InvalidLineError) Unwrap() error { return ErrInvalidLine }

var wordValues = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// Decode returns the value of a single digit or a digit word.
// Words are lowercase and "zero" is not one of them.
func Decode(s string) (int, error) {
	if len(s) == 1 {
		if d, err := aoc.Digit(rune(s[0])); err == nil {
			return d, nil
		}
	}
	if v, ok := wordValues[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, s)
}

// Token is one occurrence of a digit or digit word in a line.
type Token struct {
	Text  string
	Start int // byte offset in the line
	Value int
}

// Matcher finds digit tokens in a line. Each pattern is scanned on its
// own so that tokens of different patterns may overlap, as in "oneight".
type Matcher struct {
	patterns []*regexp.Regexp
}

func newMatcher(patterns ...string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		m.patterns = append(m.patterns, regexp.MustCompile(p))
	}
	return m
}

var (
	// Digits matches literal digits only.
	Digits = newMatcher(`\d`)

	// Words matches literal digits and the words "one" through "nine".
	Words = newMatcher(`\d`, "one", "two", "three", "four", "five", "six", "seven", "eight", "nine")
)

// Tokens returns every token in line ordered by start offset. Tokens
// starting at the same offset keep the order of the matcher's patterns.
func (m *Matcher) Tokens(line string) []Token {
	var toks []Token
	for _, rx := range m.patterns {
		for _, loc := range rx.FindAllStringIndex(line, -1) {
			text := line[loc[0]:loc[1]]
			toks = append(toks, Token{
				Text:  text,
				Start: loc[0],
				Value: aoc.MustGet(Decode(text)),
			})
		}
	}
	slices.SortStableFunc(toks, func(a, b Token) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return toks
}

// ParseLine returns the calibration value of line: ten times its first
// token plus its last token. An empty line is worth 0. A trailing "\r"
// is ignored.
func (m *Matcher) ParseLine(line string) (int, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return 0, nil
	}
	toks := m.Tokens(line)
	if len(toks) == 0 {
		return 0, &InvalidLineError{Line: line}
	}
	first, last := toks[0], toks[len(toks)-1]
	aoc.Debug("calibration", "line", line, "first", first.Text, "last", last.Text)
	return first.Value*10 + last.Value, nil
}

// ParseDocument returns the sum of the calibration values of every line
// in doc. It fails on the first invalid line.
func (m *Matcher) ParseDocument(doc string) (int, error) {
	total := 0
	err := aoc.ForLinesY(doc, func(y int, line string) error {
		v, err := m.ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		total += v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ParseDocumentParallel is ParseDocument with lines parsed by up to jobs
// goroutines (one per CPU if jobs <= 0).
func (m *Matcher) ParseDocumentParallel(ctx context.Context, doc string, jobs int) (int, error) {
	return aoc.ParallelMapFold(ctx, jobs, aoc.Lines(doc),
		func(y int, line string) (int, error) {
			v, err := m.ParseLine(line)
			if err != nil {
				return 0, fmt.Errorf("line %d: %w", y+1, err)
			}
			return v, nil
		},
		func(total, v int) int { return total + v },
		0,
	)
}

// ParseLine is Words.ParseLine.
func ParseLine(line string) (int, error) {
	return Words.ParseLine(line)
}

// ParseDocument is Words.ParseDocument.
func ParseDocument(doc string) (int, error) {
	return Words.ParseDocument(doc)
}

// ParseDocumentParallel is Words.ParseDocumentParallel.
func ParseDocumentParallel(ctx context.Context, doc string, jobs int) (int, error) {
	return Words.ParseDocumentParallel(ctx, doc, jobs)
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func Part1(doc string) (int, error) {
	return Digits.ParseDocument(doc)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func Part2(doc string) (int, error) {
	return Words.ParseDocument(doc)
}
