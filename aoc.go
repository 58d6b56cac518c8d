// Package aoc are quick & dirty utilities for solving Advent of Code 2023
// problems. (forked from maisem/aoc, forked from bradfitz/aoc)
//
// Solvers keep their sample input and expected answer in the doc comment
// of the function that computes it:
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//	func Part1(doc string) (int, error)
//
// A doc comment with only a want= line reuses the previous function's input.
package aoc

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Sample is a sample input and the answer expected for it.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := Sample{
			Want:  m[1],
			Input: m[2],
		}
		return s, true
	}
	var zero Sample
	return zero, false
}

// Samples extracts the samples from the doc comments of the top-level
// functions in src, keyed by function name.
func Samples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[funcName] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples, nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
