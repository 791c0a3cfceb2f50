package lexer

// Character classifier: pure predicates over a single byte. ASCII only —
// the tokenizer's non-goals exclude Unicode identifiers.

func isIdentifierStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierContinue(c byte) bool {
	return isIdentifierStart(c) || isDecimalDigit(c)
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

// isRadixDigit reports whether c is a valid digit for radix r (2, 8, or 16).
func isRadixDigit(c byte, r int) bool {
	switch r {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		panic("lexer: unsupported radix")
	}
}

// translateEscape maps the character following a backslash inside a string
// literal to its translated byte. ok is false when c has no translation, in
// which case the caller appends the backslash and c verbatim.
func translateEscape(c byte) (b byte, ok bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '0':
		return 0, true
	default:
		return 0, false
	}
}
