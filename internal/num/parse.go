package num

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isXMLSpace reports the four XML whitespace characters.
func isXMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isCSpace matches isspace in the C locale.
func isCSpace(b byte) bool {
	return isXMLSpace(b) || b == '\v' || b == '\f'
}

func trimXMLSpace(b []byte) []byte {
	for len(b) > 0 && isXMLSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isXMLSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

func skipCSpace(b []byte) []byte {
	for len(b) > 0 && isCSpace(b[0]) {
		b = b[1:]
	}
	return b
}

// IntBounds returns the inclusive range of a signed integer of the given bit size.
// Unknown sizes are treated as 64 bits.
func IntBounds(bits int) (lo, hi int64) {
	switch bits {
	case 8:
		return -1 << 7, 1<<7 - 1
	case 16:
		return -1 << 15, 1<<15 - 1
	case 32:
		return -1 << 31, 1<<31 - 1
	default:
		return -1 << 63, 1<<63 - 1
	}
}
