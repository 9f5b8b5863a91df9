// Package rps scores rock, paper, scissors rounds.
//
// data:
//
// A Y
// B X
// C Z
//
// The first column is the opponent's shape. Depending on the Mode, the third
// column is either the player's shape or the outcome the player has to
// reach.
package rps

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/miku/aoc22go/internal/lines"
)

var (
	ErrLineLength     = errors.New("expecting line of length 3")
	ErrUnknownShape   = errors.New("unknown shape character")
	ErrUnknownOutcome = errors.New("unknown outcome character")
	ErrUnknownMode    = errors.New("unknown mode")
)

type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

// Shapes lists every shape.
var Shapes = []Shape{Rock, Paper, Scissors}

var shapeCodes = map[byte]Shape{
	'A': Rock,
	'B': Paper,
	'C': Scissors,
	'X': Rock,
	'Y': Paper,
	'Z': Scissors,
}

// ParseShape maps A/X, B/Y and C/Z to rock, paper and scissors.
func ParseShape(c byte) (Shape, error) {
	if s, ok := shapeCodes[c]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, c, codes(shapeCodes))
}

func (s Shape) Score() int {
	switch s {
	case Rock:
		return 1
	case Paper:
		return 2
	case Scissors:
		return 3
	default:
		panic(fmt.Sprintf("invalid shape: %d", int(s)))
	}
}

// Beats reports whether s wins against o.
func (s Shape) Beats(o Shape) bool {
	switch s {
	case Rock:
		return o == Scissors
	case Paper:
		return o == Rock
	case Scissors:
		return o == Paper
	default:
		panic(fmt.Sprintf("invalid shape: %d", int(s)))
	}
}

func (s Shape) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

type Outcome int

const (
	Lose Outcome = iota + 1
	Draw
	Win
)

// Outcomes lists every outcome.
var Outcomes = []Outcome{Lose, Draw, Win}

var outcomeCodes = map[byte]Outcome{
	'X': Lose,
	'Y': Draw,
	'Z': Win,
}

// ParseOutcome maps X, Y and Z to lose, draw and win.
func ParseOutcome(c byte) (Outcome, error) {
	if o, ok := outcomeCodes[c]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownOutcome, c, codes(outcomeCodes))
}

func (o Outcome) Score() int {
	switch o {
	case Lose:
		return 0
	case Draw:
		return 3
	case Win:
		return 6
	default:
		panic(fmt.Sprintf("invalid outcome: %d", int(o)))
	}
}

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Play returns the outcome for the player.
func Play(opponent, player Shape) Outcome {
	switch {
	case opponent == player:
		return Draw
	case player.Beats(opponent):
		return Win
	default:
		return Lose
	}
}

// ShapeFor returns the shape the player has to pick against opponent to
// reach the wanted outcome.
func ShapeFor(opponent Shape, want Outcome) Shape {
	switch want {
	case Draw:
		return opponent
	case Win:
		for _, s := range Shapes {
			if s.Beats(opponent) {
				return s
			}
		}
	case Lose:
		for _, s := range Shapes {
			if opponent.Beats(s) {
				return s
			}
		}
	}
	panic(fmt.Sprintf("no shape for %v against %v", want, opponent))
}

// Mode selects how the third column of a round is read.
type Mode int

const (
	// Strategy reads the third column as the required outcome.
	Strategy Mode = iota
	// Direct reads the third column as the player's shape.
	Direct
)

// ParseMode accepts "outcome" and "direct".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "outcome", "strategy":
		return Strategy, nil
	case "direct":
		return Direct, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case Strategy:
		return "outcome"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ScoreRound scores a single three character round, e.g. "A Y". The middle
// character is not looked at.
func ScoreRound(line string, mode Mode) (int, error) {
	if len(line) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrLineLength, line)
	}
	opponent, err := ParseShape(line[0])
	if err != nil {
		return 0, err
	}
	var (
		player  Shape
		outcome Outcome
	)
	switch mode {
	case Direct:
		if player, err = ParseShape(line[2]); err != nil {
			return 0, err
		}
		outcome = Play(opponent, player)
	case Strategy:
		if outcome, err = ParseOutcome(line[2]); err != nil {
			return 0, err
		}
		player = ShapeFor(opponent, outcome)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	return outcome.Score() + player.Score(), nil
}

// LineError reports a round that could not be scored.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ScoreFile sums the scores of all rounds in r. Every line is a round, so a
// blank line is an error. If debug is not nil, each round and its score are
// written to it.
func ScoreFile(r io.Reader, mode Mode, debug io.Writer) (int, error) {
	var total int
	err := lines.Each(r, func(n int, line string) error {
		score, err := ScoreRound(line, mode)
		if err != nil {
			return &LineError{Line: n, Text: line, Err: err}
		}
		if debug != nil {
			fmt.Fprintf(debug, "%s:  %d\n", line, score)
		}
		total = total + score
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// codes returns the accepted characters of a lookup table, e.g. "A, B, C".
func codes[V any](m map[byte]V) string {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var parts []string
	for _, k := range keys {
		parts = append(parts, string(k))
	}
	return strings.Join(parts, ", ")
}
