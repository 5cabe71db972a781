package strs

import (
	"fmt"
	"iter"

	"github.com/indigo-web/weblinq/errors"
)

// List is an indexed collection of strings. Strings implements it as a read-only list:
// all the modifying methods fail with errors.ErrInvalidArgument.
type List interface {
	Len() int
	At(i int) string
	Get(i int) (string, error)
	All() iter.Seq[string]
	Set(i int, value string) error
	Insert(i int, value string) error
	Add(value string) error
	Remove(value string) (bool, error)
	RemoveAt(i int) error
	Clear() error
}

var _ List = Strings{}

// All returns an iterator over the strings. Every range over it starts from the beginning
// and owns its own position, so the iterator may be used any number of times, including
// concurrently.
func (s Strings) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		switch s.kind {
		case single:
			yield(s.value)
		case many:
			for _, value := range s.values {
				if !yield(value) {
					return
				}
			}
		}
	}
}

// Enumerate is All, but also yields indices.
func (s Strings) Enumerate() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		switch s.kind {
		case single:
			yield(0, s.value)
		case many:
			for i, value := range s.values {
				if !yield(i, value) {
					return
				}
			}
		}
	}
}

func readOnly(op string) error {
	return fmt.Errorf("strs: %s: %w", op, errors.ErrInvalidArgument)
}

func (Strings) Set(int, string) error {
	return readOnly("set")
}

func (Strings) Insert(int, string) error {
	return readOnly("insert")
}

func (Strings) Add(string) error {
	return readOnly("add")
}

func (Strings) Remove(string) (bool, error) {
	return false, readOnly("remove")
}

func (Strings) RemoveAt(int) error {
	return readOnly("remove at")
}

func (Strings) Clear() error {
	return readOnly("clear")
}
