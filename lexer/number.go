package lexer

import "github.com/gopylex/pylex/lexer/token"

// lexStartingWithZero disambiguates everything that can follow a leading
// '0': a radix prefix, a run of further decimal digits (valid only if
// all zero), a fraction, an exponent, an imaginary suffix, or nothing
// (the literal 0 itself).
func (l *Lexer) lexStartingWithZero() {
	c, ok := l.peekByte()
	if !ok {
		l.emit(token.INTEGER_LITERAL)
		return
	}
	switch {
	case c == 'b' || c == 'B':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.lexRadixInteger(2, token.BINARY_INTEGER_LITERAL)
	case c == 'o' || c == 'O':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.lexRadixInteger(8, token.OCTAL_INTEGER_LITERAL)
	case c == 'x' || c == 'X':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.lexRadixInteger(16, token.HEX_INTEGER_LITERAL)
	case isDecimalDigit(c):
		l.lexZeroPrefixedRun()
	case c == '.':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.lexFloatFraction()
	case c == 'e' || c == 'E':
		l.lexExponentOrStop(false)
	case c == 'j' || c == 'J':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.emit(token.IMAGINARY_LITERAL)
	case isIdentifierStart(c):
		l.emitMalformedNumber()
	default:
		l.emit(token.INTEGER_LITERAL)
	}
}

// lexRadixInteger consumes the digits of a 0b/0o/0x literal, which must
// have at least one digit after the prefix.
func (l *Lexer) lexRadixInteger(radix int, tt token.Type) {
	count := 0
	for {
		c, ok := l.peekByte()
		if !ok || !isRadixDigit(c, radix) {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
		count++
	}
	if count == 0 {
		l.consumeWordTail()
		l.emitError("Radix integer literal requires at least one digit.")
		return
	}
	if c, ok := l.peekByte(); ok && isIdentifierStart(c) {
		l.emitMalformedNumber()
		return
	}
	l.emit(tt)
}

// lexZeroPrefixedRun consumes the run of decimal digits following a
// leading '0'. "0 0*" is a valid INTEGER_LITERAL (0, 00, 000, ...); any
// non-zero digit in the run makes the whole span a single ERROR token
// rather than being split digit by digit.
func (l *Lexer) lexZeroPrefixedRun() {
	hasNonZero := false
	for {
		c, ok := l.peekByte()
		if !ok || !isDecimalDigit(c) {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
		if c != '0' {
			hasNonZero = true
		}
	}
	if hasNonZero {
		l.consumeWordTail()
		l.emitError("Integer literal cannot start with 0")
		return
	}
	if c, ok := l.peekByte(); ok && isIdentifierStart(c) {
		l.emitMalformedNumber()
		return
	}
	l.emit(token.INTEGER_LITERAL)
}

// lexDecimalInteger consumes a run of decimal digits and underscores and
// then looks for the suffixes that turn it into a float or an imaginary
// literal.
func (l *Lexer) lexDecimalInteger() {
	for {
		c, ok := l.peekByte()
		if !ok || (!isDecimalDigit(c) && c != '_') {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
	}
	c, ok := l.peekByte()
	if !ok {
		l.emit(token.INTEGER_LITERAL)
		return
	}
	switch {
	case c == '.':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.lexFloatFraction()
	case c == 'e' || c == 'E':
		l.lexExponentOrStop(false)
	case c == 'j' || c == 'J':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.emit(token.IMAGINARY_LITERAL)
	case isIdentifierStart(c):
		l.emitMalformedNumber()
	default:
		l.emit(token.INTEGER_LITERAL)
	}
}

// lexDot disambiguates a leading '.': the DOT delimiter, or the start of
// a float literal like ".5".
func (l *Lexer) lexDot() {
	c, ok := l.peekByte()
	if ok && isDecimalDigit(c) {
		l.lexFloatFraction()
		return
	}
	l.emit(token.DOT)
}

// lexFloatFraction consumes the digits after a decimal point and then,
// like lexDecimalInteger, looks for an exponent or imaginary suffix.
func (l *Lexer) lexFloatFraction() {
	for {
		c, ok := l.peekByte()
		if !ok || !isDecimalDigit(c) {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
	}
	c, ok := l.peekByte()
	if !ok {
		l.emit(token.FLOATING_POINT_LITERAL)
		return
	}
	switch {
	case c == 'e' || c == 'E':
		l.lexExponentOrStop(true)
	case c == 'j' || c == 'J':
		l.nextByte()
		l.buffer.WriteByte(c)
		l.emit(token.IMAGINARY_LITERAL)
	case isIdentifierStart(c):
		l.emitMalformedNumber()
	default:
		l.emit(token.FLOATING_POINT_LITERAL)
	}
}

// lexExponentOrStop is called with 'e'/'E' still unconsumed (only
// peeked). An exponent marker only belongs to the number if it is
// followed by an optional sign and then at least one digit; "1e" alone
// must come back out as INTEGER_LITERAL("1") followed by a fresh
// IDENTIFIER("e"). That requires looking up to three bytes ahead before
// committing, so this reads directly off the Source checkpoint instead
// of the Lexer's one-byte backup.
func (l *Lexer) lexExponentOrStop(isFloat bool) {
	l.src.Mark()

	e, eOK := l.src.Read()
	if !eOK {
		l.finishNumber(isFloat)
		return
	}

	next, nextOK := l.src.Read()
	hasSign := nextOK && (next == '+' || next == '-')

	var digit byte
	var hasDigit bool
	switch {
	case hasSign:
		d, dOK := l.src.Read()
		if dOK && isDecimalDigit(d) {
			digit, hasDigit = d, true
		}
	case nextOK && isDecimalDigit(next):
		digit, hasDigit = next, true
	}

	if !hasDigit {
		l.src.Reset()
		l.finishNumber(isFloat)
		return
	}
	l.src.Reset()

	l.nextByte()
	l.buffer.WriteByte(e)
	if hasSign {
		l.nextByte()
		l.buffer.WriteByte(next)
	}
	l.nextByte()
	l.buffer.WriteByte(digit)

	for {
		c, ok := l.peekByte()
		if !ok || !isDecimalDigit(c) {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
	}

	c, ok := l.peekByte()
	switch {
	case ok && (c == 'j' || c == 'J'):
		l.nextByte()
		l.buffer.WriteByte(c)
		l.emit(token.IMAGINARY_LITERAL)
	case ok && isIdentifierStart(c):
		l.emitMalformedNumber()
	default:
		l.emit(token.FLOATING_POINT_LITERAL)
	}
}

func (l *Lexer) finishNumber(isFloat bool) {
	if isFloat {
		l.emit(token.FLOATING_POINT_LITERAL)
		return
	}
	l.emit(token.INTEGER_LITERAL)
}

// emitMalformedNumber consumes the remainder of the offending word (up
// to whitespace, newline, or '#') and reports it as a single ERROR
// token: a numeric literal directly followed by an unexpected letter is
// not split into a literal token and an identifier token.
func (l *Lexer) emitMalformedNumber() {
	l.consumeWordTail()
	l.emitError("Invalid numeric literal: identifier cannot start with a digit.")
}

func (l *Lexer) consumeWordTail() {
	for {
		c, ok := l.peekByte()
		if !ok || isWhitespace(c) || c == '\n' || c == '#' {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
	}
}
