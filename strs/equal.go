package strs

import "hash/maphash"

// sequence is anything, that can be compared or hashed positionally.
type sequence interface {
	Len() int
	At(i int) string
}

type scalar string

func (scalar) Len() int { return 1 }

func (s scalar) At(int) string { return string(s) }

type array []string

func (a array) Len() int { return len(a) }

func (a array) At(i int) string { return a[i] }

func equal(a, b sequence) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}

	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}

// Equal tells whether both collections hold the same strings in the same order. The way
// they were constructed doesn't matter.
func Equal(a, b Strings) bool {
	return equal(a, b)
}

func (s Strings) Equal(other Strings) bool {
	return equal(s, other)
}

// EqualString tells whether the collection consists of exactly the given string.
func (s Strings) EqualString(str string) bool {
	return equal(s, scalar(str))
}

// EqualValue is EqualString, except ok=false stands for no value, which equals to Empty.
func (s Strings) EqualValue(str string, ok bool) bool {
	if !ok {
		return s.Len() == 0
	}

	return s.EqualString(str)
}

// EqualSlice tells whether the collection holds exactly the slice's strings.
func (s Strings) EqualSlice(strs []string) bool {
	return equal(s, array(strs))
}

const (
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

var seed = maphash.MakeSeed()

func hash(seq sequence) uint64 {
	h := hashOffset
	for i := 0; i < seq.Len(); i++ {
		h = (h ^ maphash.String(seed, seq.At(i))) * hashPrime
	}

	return h
}

// Hash returns an order-sensitive hash of the strings. Equal collections always have
// equal hashes, as well as a collection and an equal string or slice (see HashString and
// HashSlice). The hash is stable only within the running process.
func (s Strings) Hash() uint64 {
	return hash(s)
}

func HashString(str string) uint64 {
	return hash(scalar(str))
}

func HashSlice(strs []string) uint64 {
	return hash(array(strs))
}
