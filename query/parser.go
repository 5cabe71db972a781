// Package query decodes URL query strings. The parser is deliberately permissive: it never
// fails, whatever the input is, as real-world query strings are often malformed.
package query

import (
	"iter"
	"strings"

	"github.com/indigo-web/weblinq/internal/strutil"
	"github.com/indigo-web/weblinq/internal/urlencoded"
)

// Pair is a single decoded query parameter. Flags (parameters without an equal sign, like
// `debug` in `?debug&page=2`) have HasValue set to false.
type Pair struct {
	Name     string
	Value    string
	HasValue bool
}

// Parse returns an iterator over decoded parameters in the order they appear in. Leading
// question mark is optional. Each range over the iterator parses the string anew.
func Parse(raw string) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		if len(raw) == 0 || raw == "?" {
			return
		}

		scan := 0
		if raw[0] == '?' {
			scan = 1
		}

		equal := indexFrom(raw, '=', 0)

		for scan < len(raw) {
			amp := indexFrom(raw, '&', scan)

			if equal < amp {
				name := strutil.LStripSpace(raw[scan:equal])
				pair := Pair{
					Name:     urlencoded.Unescape(name),
					Value:    urlencoded.Unescape(raw[equal+1 : amp]),
					HasValue: true,
				}
				if !yield(pair) {
					return
				}

				equal = indexFrom(raw, '=', amp)
			} else if amp > scan {
				if !yield(Pair{Name: urlencoded.Unescape(raw[scan:amp])}) {
					return
				}
			}

			scan = amp + 1
		}
	}
}

// indexFrom returns the index of the first c in str at or after the offset, or len(str).
func indexFrom(str string, c byte, offset int) int {
	if offset >= len(str) {
		return len(str)
	}

	if i := strings.IndexByte(str[offset:], c); i != -1 {
		return offset + i
	}

	return len(str)
}
