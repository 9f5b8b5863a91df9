// Package lines reads text input one line at a time.
//
// Regular files are memory mapped. Input is scanned forward only; to read a
// file again, open it again.
package lines

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// MaxLineSize is the longest line Each will accept.
const MaxLineSize = 1 << 20

// File is an open input, read front to back. Regular files are memory
// mapped; pipes and other special files are read directly.
type File struct {
	io.Reader
	io.Closer
}

// Open opens the named file for reading. An empty file is valid and yields
// no lines.
func Open(name string) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		return &File{Reader: f, Closer: f}, nil
	}
	r, err := mmap.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{
		Reader: io.NewSectionReader(r, 0, int64(r.Len())),
		Closer: r,
	}, nil
}

// Each calls fn for every line in r, with line numbers starting at 1. Line
// terminators (\n or \r\n) are stripped. Each stops at the first error from
// fn and returns it as is.
func Each(r io.Reader, fn func(n int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	var n int
	for scanner.Scan() {
		n++
		if err := fn(n, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
