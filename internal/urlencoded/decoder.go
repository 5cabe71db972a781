package urlencoded

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/weblinq/internal/hexconv"
	"github.com/indigo-web/utils/uf"
)

// Unescape decodes a form-urlencoded string: pluses become spaces, and percent-encoded
// octets are replaced by their values. It never fails. Malformed sequences (a percent sign
// not followed by two hex digits) are kept as they are, and so are escaped octets that
// don't form a valid UTF-8 sequence.
func Unescape(str string) string {
	if strings.IndexByte(str, '%') == -1 && strings.IndexByte(str, '+') == -1 {
		return str
	}

	buff := make([]byte, 0, len(str))
	var octets []byte

	for i := 0; i < len(str); {
		switch c := str[i]; c {
		case '+':
			buff = append(buff, ' ')
			i++
		case '%':
			octets = octets[:0]
			j := i
			for j+2 < len(str) && str[j] == '%' {
				a, b := hexconv.Halfbyte[str[j+1]], hexconv.Halfbyte[str[j+2]]
				if a|b > 0x0f {
					break
				}

				octets = append(octets, a<<4|b)
				j += 3
			}

			if len(octets) == 0 {
				buff = append(buff, '%')
				i++
				continue
			}

			buff = appendOctets(buff, octets, str[i:j])
			i = j
		default:
			buff = append(buff, c)
			i++
		}
	}

	return uf.B2S(buff)
}

// appendOctets appends decoded octets, keeping the escaped form (3 bytes per octet in
// escaped) of those which don't belong to a valid UTF-8 sequence.
func appendOctets(buff, octets []byte, escaped string) []byte {
	if utf8.Valid(octets) {
		return append(buff, octets...)
	}

	for k := 0; k < len(octets); {
		r, size := utf8.DecodeRune(octets[k:])
		if r == utf8.RuneError && size == 1 {
			buff = append(buff, escaped[k*3:k*3+3]...)
			k++
			continue
		}

		buff = append(buff, octets[k:k+size]...)
		k += size
	}

	return buff
}
