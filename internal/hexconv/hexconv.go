package hexconv

// Halfbyte maps an ASCII hex digit to its value. Every other character maps to 0xFF,
// so a|b > 0x0f tells that at least one of two characters isn't a hex digit.
var Halfbyte = [256]byte{}

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		Halfbyte[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		Halfbyte[c] = c - 'a' + 10
		Halfbyte[c-'a'+'A'] = c - 'a' + 10
	}
}

// Is tells whether the char is a hex digit.
func Is(char byte) bool {
	return Halfbyte[char] != 0xFF
}
