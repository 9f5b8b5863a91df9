// Package calories groups integer lines into elves and ranks them by total.
//
// data:
//
// 1000
// 2000
// 3000
//
// 4000
package calories

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/miku/aoc22go/internal/lines"
)

// ErrOverflow is returned when a total does not fit into an int.
var ErrOverflow = errors.New("calories overflow")

// Elf is a run of values between blank lines, numbered from 0 in the order
// found.
type Elf struct {
	ID   int
	Food []int
}

func (e *Elf) Add(v int) {
	e.Food = append(e.Food, v)
}

// Total wraps around on overflow. Elves returned by Group are checked.
func (e Elf) Total() int {
	var sum int
	for _, v := range e.Food {
		sum = sum + v
	}
	return sum
}

// add returns a+b, false if the sum overflows.
func add(a, b int) (int, bool) {
	s := a + b
	if (s > a) != (b > 0) {
		return 0, false
	}
	return s, true
}

// ParseError reports a line that is neither blank nor an integer.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid calories %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Group reads r and returns one Elf per blank line separated group. Only an
// empty line separates groups. The last group counts without a trailing
// blank line; an input without any lines has no elves.
func Group(r io.Reader) ([]Elf, error) {
	var (
		elves   []Elf
		current = Elf{ID: 0}
		total   int
		seen    bool
	)
	err := lines.Each(r, func(n int, line string) error {
		seen = true
		if line == "" {
			elves = append(elves, current)
			current = Elf{ID: current.ID + 1}
			total = 0
			return nil
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		var ok bool
		if total, ok = add(total, v); !ok {
			return &ParseError{Line: n, Text: line, Err: ErrOverflow}
		}
		current.Add(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if seen {
		elves = append(elves, current)
	}
	return elves, nil
}

// Max returns the first elf with the largest total, false if there are none.
func Max(elves []Elf) (Elf, bool) {
	if len(elves) == 0 {
		return Elf{}, false
	}
	best, most := 0, elves[0].Total()
	for i := 1; i < len(elves); i++ {
		if t := elves[i].Total(); t > most {
			best, most = i, t
		}
	}
	return elves[best], true
}

// Top returns up to n elves, largest total first. The input is left as is.
func Top(elves []Elf, n int) []Elf {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(elves)
	slices.SortStableFunc(sorted, func(a, b Elf) int {
		return cmp.Compare(b.Total(), a.Total())
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Sum adds up the totals of all elves.
func Sum(elves []Elf) (int, error) {
	var sum int
	for _, e := range elves {
		var ok bool
		if sum, ok = add(sum, e.Total()); !ok {
			return 0, fmt.Errorf("elf %d: %w", e.ID, ErrOverflow)
		}
	}
	return sum, nil
}
