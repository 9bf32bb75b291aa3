package num

// ParseInt parses an integer lexical value (optional sign followed by digits,
// surrounded by optional XML whitespace) into a signed integer of the given
// bit size.
func ParseInt(b []byte, bits int) (int64, *ParseError) {
	b = trimXMLSpace(b)
	if len(b) == 0 {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	neg, i := sign(b)
	if i >= len(b) {
		return 0, &ParseError{Kind: ParseNoDigits}
	}
	for _, c := range b[i:] {
		if !isDigit(c) {
			return 0, &ParseError{Kind: ParseBadChar}
		}
	}
	v, overflow := accumulate(b[i:], neg, bits)
	if overflow {
		return 0, &ParseError{Kind: ParseRange}
	}
	return v, nil
}

// ScanInt reads the longest integer prefix of b the way atoi does in the C
// locale: leading whitespace is skipped, an optional sign is accepted and
// scanning stops at the first non-digit. Input without digits yields 0 and
// values beyond the bit size saturate at its bounds. ScanInt never fails.
func ScanInt(b []byte, bits int) int64 {
	b = skipCSpace(b)
	neg, i := sign(b)
	end := i
	for end < len(b) && isDigit(b[end]) {
		end++
	}
	v, _ := accumulate(b[i:end], neg, bits)
	return v
}

func sign(b []byte) (neg bool, i int) {
	if len(b) == 0 {
		return false, 0
	}
	switch b[0] {
	case '+':
		return false, 1
	case '-':
		return true, 1
	}
	return false, 0
}

// accumulate folds the digits into a value clamped to the bit size bounds.
// The overflow result reports whether clamping happened.
func accumulate(digits []byte, neg bool, bits int) (int64, bool) {
	lo, hi := IntBounds(bits)
	var v int64
	for _, c := range digits {
		d := int64(c - '0')
		if neg {
			if v < (lo+d)/10 {
				return lo, true
			}
			v = v*10 - d
			continue
		}
		if v > (hi-d)/10 {
			return hi, true
		}
		v = v*10 + d
	}
	return v, false
}
