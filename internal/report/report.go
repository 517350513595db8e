package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

type Format int

const (
	FormatTable Format = iota
	FormatPlain
)

// Entries renders seq in the given format and returns the number of
// entries written.
func Entries[K, V any](w io.Writer, format Format, seq iter.Seq2[K, V]) (int, error) {
	if format == FormatPlain {
		n := 0
		for k, v := range seq {
			if _, err := fmt.Fprintf(w, "%v=%v\n", k, v); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	}

	data := pterm.TableData{{"#", "KEY", "VALUE"}}
	for k, v := range seq {
		data = append(data, []string{
			humanize.Comma(int64(len(data))),
			fmt.Sprint(k),
			fmt.Sprint(v),
		})
	}

	n := len(data) - 1
	if n == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return 0, err
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return 0, err
	}

	_, err = fmt.Fprintln(w, out)
	return n, err
}

// Lookup renders the outcome of a single search.
func Lookup[K, V any](w io.Writer, key K, value V, found bool) error {
	if !found {
		_, err := fmt.Fprintf(w, "search %v: not found\n", key)
		return err
	}

	_, err := fmt.Fprintf(w, "search %v: %v\n", key, value)
	return err
}

// Summary renders the size and depth of a dictionary.
func Summary(w io.Writer, entries, depth int) error {
	_, err := fmt.Fprintf(w,
		"%s %s, depth %s\n",
		humanize.Comma(int64(entries)),
		plural(entries, "entry", "entries"),
		humanize.Comma(int64(depth)),
	)
	return err
}

// Bounds renders the smallest and the largest key of a non-empty dictionary.
func Bounds[K any](w io.Writer, lo, hi K) error {
	_, err := fmt.Fprintf(w, "keys %v .. %v\n", lo, hi)
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
