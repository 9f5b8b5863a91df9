// calories finds the elf carrying the most calories.
//
// data:
//
// 1000
// 2000
// 3000
//
// 4000
//
// 5000
// 6000
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/miku/aoc22go/internal/calories"
	"github.com/miku/aoc22go/internal/lines"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "file to write cpu profile to")
	top        = flag.Int("top", 3, "number of elves to sum up")
)

// report writes the fattest elf and the n largest elves with their sum.
func report(w io.Writer, elves []calories.Elf, n int) error {
	fattest, ok := calories.Max(elves)
	if !ok {
		fmt.Fprintln(w, "No elves found...")
		return nil
	}
	fmt.Fprintf(w, "Fattest Elf:  %d - %d Calories\n", fattest.ID, fattest.Total())
	best := calories.Top(elves, n)
	sum, err := calories.Sum(best)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Top %d Elves:\n", len(best))
	for _, e := range best {
		fmt.Fprintf(w, "  %d - %d Calories\n", e.ID, e.Total())
	}
	fmt.Fprintf(w, "Top %d total:  %d Calories\n", len(best), sum)
	return nil
}

// readElves groups the file into elves. A file that cannot be opened has no
// elves.
func readElves(name string) ([]calories.Elf, error) {
	f, err := lines.Open(name)
	if err != nil {
		return nil, nil
	}
	defer f.Close()
	return calories.Group(f)
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Need file argument!")
		os.Exit(1)
	}
	if *top <= 0 {
		log.Fatalf("top must be positive, got %d", *top)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	elves, err := readElves(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := report(os.Stdout, elves, *top); err != nil {
		log.Fatal(err)
	}
}
