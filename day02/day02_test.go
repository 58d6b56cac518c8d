package day02

import (
	_ "embed"
	"errors"
	"fmt"
	"reflect"
	"testing"

	aoc "github.com/maisem/aoc2023"
)

//go:embed day02.go
var source []byte

func TestSamples(t *testing.T) {
	samples, err := aoc.Samples(source)
	if err != nil {
		t.Fatal(err)
	}
	parts := map[string]func(string) (int, error){
		"Part1": Part1,
		"Part2": Part2,
	}
	for _, name := range aoc.SortedKeys(parts) {
		s, ok := samples[name]
		if !ok {
			t.Errorf("no sample for %s", name)
			continue
		}
		got, err := parts[name](s.Input)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if fmt.Sprint(got) != s.Want {
			t.Errorf("%s(sample) = %v, want %v", name, got, s.Want)
		}
	}
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		line string
		want Game
	}{
		{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", Game{ID: 1, Red: 4, Green: 2, Blue: 6}},
		{"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue", Game{ID: 2, Red: 1, Green: 3, Blue: 4}},
		{"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red", Game{ID: 3, Red: 20, Green: 13, Blue: 6}},
		{"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red", Game{ID: 4, Red: 14, Green: 3, Blue: 15}},
		{"  Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green  ", Game{ID: 5, Red: 6, Green: 3, Blue: 2}},
		{"Game 6: 2 purple, 1 red", Game{ID: 6, Red: 1}},
	}
	for _, tt := range tests {
		got, err := ParseGame(tt.line)
		if err != nil {
			t.Errorf("ParseGame(%q): %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGame(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseGameMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"Game: 1 red",
		"Game x: 1 red",
		"Game 1: red",
		"Game 1: x red",
		"Game 1: 1 red;",
	} {
		if _, err := ParseGame(line); !errors.Is(err, ErrMalformedGame) {
			t.Errorf("ParseGame(%q) error = %v, want ErrMalformedGame", line, err)
		}
	}
}

func TestConstrain(t *testing.T) {
	games, err := ParseGames(`Game 1: 3 green, 1 blue, 3 red; 3 blue, 1 green, 3 red; 2 red, 12 green, 7 blue; 1 red, 4 blue, 5 green; 7 green, 2 blue, 2 red

Game 2: 1 green, 19 blue, 1 red; 8 blue, 4 red; 3 red, 6 blue; 1 green, 1 red, 12 blue
`)
	if err != nil {
		t.Fatal(err)
	}
	wantGames := []Game{
		{ID: 1, Red: 3, Green: 12, Blue: 7},
		{ID: 2, Red: 4, Green: 1, Blue: 19},
	}
	if !reflect.DeepEqual(games, wantGames) {
		t.Fatalf("ParseGames = %+v, want %+v", games, wantGames)
	}
	got := Constrain(games, Bag{Red: 3, Green: 12, Blue: 19})
	want := []Game{{ID: 1, Red: 3, Green: 12, Blue: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Constrain = %+v, want %+v", got, want)
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		g    Game
		want int
	}{
		{Game{Red: 4, Green: 2, Blue: 6}, 48},
		{Game{Red: 20, Green: 13, Blue: 6}, 1560},
		{Game{Red: 1}, 0},
	}
	for _, tt := range tests {
		if got := tt.g.Power(); got != tt.want {
			t.Errorf("%+v.Power() = %v, want %v", tt.g, got, tt.want)
		}
	}
}
