package strutil

import (
	"strings"
	"unicode"
)

// LStripSpace strips leading whitespace characters, including non-ASCII ones.
func LStripSpace(str string) string {
	return strings.TrimLeftFunc(str, unicode.IsSpace)
}
