package lines

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func collect(t *testing.T, r io.Reader) []string {
	t.Helper()
	var got []string
	err := Each(r, func(n int, line string) error {
		if n != len(got)+1 {
			t.Fatalf("line number %d, want %d", n, len(got)+1)
		}
		got = append(got, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	return got
}

func TestEach(t *testing.T) {
	var cases = []struct {
		about string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line without newline", "1000", []string{"1000"}},
		{"trailing newline", "1000\n2000\n", []string{"1000", "2000"}},
		{"blank lines kept", "1\n\n2", []string{"1", "", "2"}},
		{"crlf", "A Y\r\nB X\r\n", []string{"A Y", "B X"}},
	}
	for _, c := range cases {
		got := collect(t, strings.NewReader(c.input))
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("[%s] got %q, want %q", c.about, got, c.want)
		}
	}
}

func TestEachStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	var seen int
	err := Each(strings.NewReader("a\nb\nc\n"), func(n int, line string) error {
		seen++
		if line == "b" {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Fatalf("got %v, want %v", err, stop)
	}
	if seen != 2 {
		t.Fatalf("fn called %d times, want 2", seen)
	}
}

func TestEachLineTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxLineSize+1)
	err := Each(strings.NewReader(long), func(int, string) error { return nil })
	if err == nil {
		t.Fatalf("expected error for line longer than %d bytes", MaxLineSize)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(name, []byte("1000\n2000\n\n3000"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	got := collect(t, f)
	want := []string{"1000", "2000", "", "3000"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOpenEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(name, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	if got := collect(t, f); len(got) != 0 {
		t.Fatalf("got %q, want no lines", got)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
}

func BenchmarkEach(b *testing.B) {
	input := strings.Repeat("A Y\nB X\nC Z\n", 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := Each(strings.NewReader(input), func(int, string) error { return nil })
		if err != nil {
			b.Fatal(err)
		}
	}
}
