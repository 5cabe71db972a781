package strs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/indigo-web/weblinq/errors"
)

type kind uint8

const (
	none kind = iota
	single
	many
)

// Strings represents zero, one or many strings in an efficient way. Zero and one values,
// which is the overwhelming majority of header and query values, don't allocate at all.
//
// The value is immutable: every operation producing a different set of strings returns
// a new instance, so it can be freely shared between goroutines. The zero value is Empty.
// Because of the underlying slice, Strings isn't comparable via ==, use Equal instead.
type Strings struct {
	value  string
	values []string
	kind   kind
}

// Empty holds no strings at all.
var Empty = Strings{}

// FromScalar returns a collection of exactly one string.
func FromScalar(value string) Strings {
	return Strings{kind: single, value: value}
}

// FromValue is the same as FromScalar, except that ok=false (no value) results in Empty.
// It accepts the same pair as returned by Strings.Scalar.
func FromValue(value string, ok bool) Strings {
	if !ok {
		return Empty
	}

	return FromScalar(value)
}

// FromArray returns a collection of the passed strings, preserving their order. The slice
// is copied, so modifying it afterward doesn't affect the returned value.
func FromArray(values []string) Strings {
	switch len(values) {
	case 0:
		return Empty
	case 1:
		return FromScalar(values[0])
	default:
		return wrap(slices.Clone(values))
	}
}

// Of is a variadic form of FromArray.
func Of(values ...string) Strings {
	return FromArray(values)
}

// wrap takes an ownership over the slice.
func wrap(values []string) Strings {
	switch len(values) {
	case 0:
		return Empty
	case 1:
		return FromScalar(values[0])
	default:
		return Strings{kind: many, values: values}
	}
}

// Len returns the number of strings.
func (s Strings) Len() int {
	switch s.kind {
	case none:
		return 0
	case single:
		return 1
	default:
		return len(s.values)
	}
}

// At returns the i-th string. It panics if i is out of range, as slice indexing does.
func (s Strings) At(i int) string {
	value, err := s.Get(i)
	if err != nil {
		panic(err)
	}

	return value
}

// Get returns the i-th string or errors.ErrIndexOutOfRange.
func (s Strings) Get(i int) (string, error) {
	if i < 0 || i >= s.Len() {
		return "", fmt.Errorf("strs: index %d with length %d: %w", i, s.Len(), errors.ErrIndexOutOfRange)
	}

	if s.kind == single {
		return s.value, nil
	}

	return s.values[i], nil
}

// ToArray returns all the strings in a newly allocated slice. The result is never nil.
func (s Strings) ToArray() []string {
	switch s.kind {
	case none:
		return []string{}
	case single:
		return []string{s.value}
	default:
		return slices.Clone(s.values)
	}
}

// Scalar returns the collection as a single string. Multiple values are joined with a
// comma without any escaping, so the result is fit for display only. Empty reports false.
func (s Strings) Scalar() (string, bool) {
	switch s.kind {
	case none:
		return "", false
	case single:
		return s.value, true
	default:
		return strings.Join(s.values, ","), true
	}
}

// String works like Scalar, but returns an empty string for Empty.
func (s Strings) String() string {
	str, _ := s.Scalar()
	return str
}

// IsEmpty reports whether there are no strings, or the only one is empty. Note that
// FromScalar("") is empty, but isn't equal to Empty, as their lengths differ.
func (s Strings) IsEmpty() bool {
	switch s.kind {
	case none:
		return true
	case single:
		return len(s.value) == 0
	default:
		return false
	}
}

// IndexOf returns the position of the first string equal to value, or -1.
func (s Strings) IndexOf(value string) int {
	switch s.kind {
	case single:
		if s.value == value {
			return 0
		}
	case many:
		return slices.Index(s.values, value)
	}

	return -1
}

func (s Strings) Contains(value string) bool {
	return s.IndexOf(value) >= 0
}

// CopyTo copies all the strings into dst starting at the offset.
func (s Strings) CopyTo(dst []string, offset int) error {
	if offset < 0 || offset > len(dst) {
		return fmt.Errorf("strs: copy offset %d with destination length %d: %w",
			offset, len(dst), errors.ErrIndexOutOfRange)
	}

	if len(dst)-offset < s.Len() {
		return fmt.Errorf("strs: copying %d strings into %d seats: %w",
			s.Len(), len(dst)-offset, errors.ErrCapacity)
	}

	switch s.kind {
	case single:
		dst[offset] = s.value
	case many:
		copy(dst[offset:], s.values)
	}

	return nil
}

func (s Strings) appendTo(dst []string) []string {
	switch s.kind {
	case single:
		return append(dst, s.value)
	case many:
		return append(dst, s.values...)
	}

	return dst
}

// Concat returns strings of a followed by strings of b. If either of them is empty,
// the other one is returned as is.
func Concat(a, b Strings) Strings {
	if a.Len() == 0 {
		return b
	}

	if b.Len() == 0 {
		return a
	}

	combined := make([]string, 0, a.Len()+b.Len())
	combined = a.appendTo(combined)
	combined = b.appendTo(combined)

	return wrap(combined)
}

// Append returns a new collection with the value added to the end.
func (s Strings) Append(value string) Strings {
	return Concat(s, FromScalar(value))
}

// Prepend returns a new collection with the value added to the beginning.
func (s Strings) Prepend(value string) Strings {
	return Concat(FromScalar(value), s)
}
