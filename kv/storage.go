package kv

import (
	"iter"
	"slices"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/weblinq/strs"
	jsoniter "github.com/json-iterator/go"
)

// Entry is a key together with all its values.
type Entry struct {
	Key    string
	Values strs.Strings
}

// Storage is an ordered associative structure, mapping a key into all of its values. It
// acts as a map but uses linear search instead, which proves to be more efficient on
// relatively low amount of entries, which often enough is the case. Keys are kept in the
// order they were first added in, values of a key in the order they arrived in.
//
// Storage isn't safe for concurrent use. Values returned from it are immutable, though,
// and remain valid after the storage is modified.
type Storage struct {
	entries []Entry
	fold    bool
}

// New returns a storage with case-insensitive keys, as used for header fields.
func New() *Storage {
	return NewPrealloc(0)
}

// NewPrealloc returns a case-insensitive storage with pre-allocated space for n keys.
func NewPrealloc(n int) *Storage {
	return &Storage{
		entries: make([]Entry, 0, n),
		fold:    true,
	}
}

// NewCaseSensitive returns a storage comparing keys byte-by-byte, as used for query
// parameters.
func NewCaseSensitive() *Storage {
	return new(Storage)
}

// NewFromMap returns a new case-insensitive instance with already inserted values from
// the given map. Note: as maps are unordered, resulting keys order is unspecified.
func NewFromMap(m map[string][]string) *Storage {
	kv := NewPrealloc(len(m))

	for key, values := range m {
		kv.Set(key, strs.FromArray(values))
	}

	return kv
}

func (s *Storage) match(a, b string) bool {
	if s.fold {
		return strcomp.EqualFold(a, b)
	}

	return a == b
}

func (s *Storage) index(key string) int {
	for i, entry := range s.entries {
		if s.match(key, entry.Key) {
			return i
		}
	}

	return -1
}

// Add appends the value to the key's values. A new entry is created if there's none.
func (s *Storage) Add(key, value string) *Storage {
	if i := s.index(key); i != -1 {
		s.entries[i].Values = s.entries[i].Values.Append(value)
		return s
	}

	s.entries = append(s.entries, Entry{
		Key:    key,
		Values: strs.FromScalar(value),
	})
	return s
}

// Set replaces all the key's values. If the key is new, it is added to the end.
// Setting strs.Empty is the same as deleting the key.
func (s *Storage) Set(key string, values strs.Strings) *Storage {
	if values.Len() == 0 {
		return s.Delete(key)
	}

	if i := s.index(key); i != -1 {
		s.entries[i] = Entry{Key: key, Values: values}
		return s
	}

	s.entries = append(s.entries, Entry{Key: key, Values: values})
	return s
}

// Delete removes the key along with all of its values.
func (s *Storage) Delete(key string) *Storage {
	if i := s.index(key); i != -1 {
		s.entries = slices.Delete(s.entries, i, i+1)
	}

	return s
}

// Get returns all the values of the key and whether the key is presented at all.
func (s *Storage) Get(key string) (strs.Strings, bool) {
	if i := s.index(key); i != -1 {
		return s.entries[i].Values, true
	}

	return strs.Empty, false
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	values, found := s.Get(key)
	if !found {
		return or
	}

	return values.At(0)
}

// Values returns all values by the key. Returns strs.Empty if key doesn't exist.
func (s *Storage) Values(key string) strs.Strings {
	values, _ := s.Get(key)
	return values
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	return s.index(key) != -1
}

// Keys returns an iterator over unique keys in their first-seen order.
func (s *Storage) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, entry := range s.entries {
			if !yield(entry.Key) {
				break
			}
		}
	}
}

// Pairs returns an iterator over keys with their values.
func (s *Storage) Pairs() iter.Seq2[string, strs.Strings] {
	return func(yield func(string, strs.Strings) bool) {
		for _, entry := range s.entries {
			if !yield(entry.Key, entry.Values) {
				break
			}
		}
	}
}

// Len returns a number of unique keys.
func (s *Storage) Len() int {
	return len(s.entries)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Equal tells whether both storages have the same keys in the same order with equal values.
func (s *Storage) Equal(other *Storage) bool {
	if s.Len() != other.Len() {
		return false
	}

	for i, entry := range s.entries {
		if entry.Key != other.entries[i].Key || !entry.Values.Equal(other.entries[i].Values) {
			return false
		}
	}

	return true
}

// Clone creates a copy, which may be modified independently.
func (s *Storage) Clone() *Storage {
	return &Storage{
		entries: slices.Clone(s.entries),
		fold:    s.fold,
	}
}

// Expose exposes the underlying entries slice.
func (s *Storage) Expose() []Entry {
	return s.entries
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() *Storage {
	s.entries = s.entries[:0]
	return s
}

// MarshalJSON encodes the storage as a JSON object, keeping the keys order.
func (s *Storage) MarshalJSON() ([]byte, error) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, entry := range s.entries {
		if i > 0 {
			stream.WriteMore()
		}

		stream.WriteObjectField(entry.Key)
		stream.WriteVal(entry.Values)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return slices.Clone(stream.Buffer()), nil
}
