// rps adds up the score of a rock, paper, scissors strategy guide.
//
// data:
//
// A Y
// B X
// C Z
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/miku/aoc22go/internal/lines"
	"github.com/miku/aoc22go/internal/rps"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "file to write cpu profile to")
	mode       = flag.String("mode", "outcome", "how to read the second column: outcome or direct")
	quiet      = flag.Bool("q", false, "do not print the score of each round")
)

// scoreFile returns the total score of the file. A file that cannot be opened
// is reported and scores 0.
func scoreFile(name string, m rps.Mode, debug io.Writer) (int, error) {
	f, err := lines.Open(name)
	if err != nil {
		fmt.Printf("Error reading file:  %v\n", err)
		return 0, nil
	}
	defer f.Close()
	return rps.ScoreFile(f, m, debug)
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Need file argument!")
		os.Exit(1)
	}
	m, err := rps.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	var debug io.Writer = os.Stdout
	if *quiet {
		debug = nil
	}
	score, err := scoreFile(flag.Arg(0), m, debug)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total score:  %d\n", score)
}
