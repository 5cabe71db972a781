package query

import (
	"iter"

	"github.com/indigo-web/weblinq/kv"
)

// Collect groups parameters by their names. Names are compared case-sensitively and kept
// in the first-seen order, values of every name in the order they arrived. Flags are
// stored as empty strings.
func Collect(pairs iter.Seq[Pair]) *kv.Storage {
	params := kv.NewCaseSensitive()

	for pair := range pairs {
		params.Add(pair.Name, pair.Value)
	}

	return params
}

// ParseParams parses the query string into grouped parameters.
func ParseParams(raw string) *kv.Storage {
	return Collect(Parse(raw))
}
