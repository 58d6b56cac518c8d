// Package day02 plays the cube game: each game reveals handfuls of red,
// green and blue cubes drawn from a bag.
package day02

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

// ErrMalformedGame is returned for lines that are not of the form
// "Game <id>: <n> <colour>, ...; ...".
var ErrMalformedGame = errors.New("malformed game")

// Game is the fewest cubes of each colour the game could have been
// played with.
type Game struct {
	ID    int
	Red   int
	Green int
	Blue  int
}

// Power is the product of the game's cube counts.
func (g Game) Power() int {
	return aoc.Product(g.Red, g.Green, g.Blue)
}

// Bag is the cubes available to play with.
type Bag struct {
	Red, Green, Blue int
}

var DefaultBag = Bag{Red: 12, Green: 13, Blue: 14}

// Possible reports whether g could have been played with the cubes in b.
func (g Game) Possible(b Bag) bool {
	return g.Red <= b.Red && g.Green <= b.Green && g.Blue <= b.Blue
}

var gameRx = regexp.MustCompile(`^Game (\d+): (.*)$`)

// ParseGame parses one line of the record. Colours other than red, green
// and blue are ignored.
func ParseGame(line string) (Game, error) {
	line = strings.TrimSpace(line)
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return Game{}, fmt.Errorf("%w: %q", ErrMalformedGame, line)
	}
	id, err := aoc.Int(m[1])
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad id: %v", ErrMalformedGame, err)
	}
	g := Game{ID: id}
	for _, round := range strings.Split(m[2], ";") {
		for _, draw := range strings.Split(round, ",") {
			ns, colour, ok := strings.Cut(strings.TrimSpace(draw), " ")
			if !ok {
				return Game{}, fmt.Errorf("%w: game %d: bad draw %q", ErrMalformedGame, id, draw)
			}
			n, err := aoc.Int(ns)
			if err != nil {
				return Game{}, fmt.Errorf("%w: game %d: bad count %q", ErrMalformedGame, id, ns)
			}
			switch strings.TrimSpace(colour) {
			case "red":
				g.Red = max(g.Red, n)
			case "green":
				g.Green = max(g.Green, n)
			case "blue":
				g.Blue = max(g.Blue, n)
			default:
				aoc.Debugf("game %d: ignoring colour %q", id, colour)
			}
		}
	}
	return g, nil
}

// ParseGames parses every non-blank line of doc.
func ParseGames(doc string) ([]Game, error) {
	var games []Game
	for _, line := range aoc.NonEmptyLines(doc) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Constrain returns the games that were possible with b.
func Constrain(games []Game, b Bag) []Game {
	var out []Game
	for _, g := range games {
		if g.Possible(b) {
			out = append(out, g)
		}
	}
	return out
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func Part1(doc string) (int, error) {
	games, err := ParseGames(doc)
	if err != nil {
		return 0, err
	}
	return aoc.Fold(Constrain(games, DefaultBag), func(sum int, g Game) int {
		return sum + g.ID
	}, 0), nil
}

// want=2286
func Part2(doc string) (int, error) {
	games, err := ParseGames(doc)
	if err != nil {
		return 0, err
	}
	return aoc.Fold(games, func(sum int, g Game) int {
		return sum + g.Power()
	}, 0), nil
}
