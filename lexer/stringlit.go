package lexer

import "github.com/gopylex/pylex/lexer/token"

// lexDoubleQuoted handles a string literal opened with a double quote;
// it shares all of its disambiguation logic with the single-quoted case.
func (l *Lexer) lexDoubleQuoted() {
	l.lexSingleOrTripleQuoted('"')
}

// lexSingleOrTripleQuoted is entered immediately after the opening quote
// has been consumed. A second matching quote is ambiguous on its own: it
// closes an empty string, or opens a triple-quoted one, depending on
// whether a third matching quote immediately follows. That one extra
// byte of lookahead is resolved with a direct Source checkpoint rather
// than through the Lexer's single-byte backup, since here two bytes may
// need to be un-read together.
func (l *Lexer) lexSingleOrTripleQuoted(quote byte) {
	c, ok := l.peekByte()
	if !ok || c != quote {
		l.lexStringBody(quote)
		return
	}

	l.src.Mark()
	_, _ = l.src.Read() // the second quote; peekByte already confirmed it
	third, thirdOK := l.src.Read()
	if thirdOK && third == quote {
		l.src.Reset()
		l.nextByte() // second quote
		l.nextByte() // third quote
		l.lexTripleQuotedBody(quote)
		return
	}

	l.src.Reset()
	l.nextByte() // second quote: the string was already closed, empty
	l.emit(token.STRING_LITERAL)
}

// lexStringBody consumes a single- or double-quoted body. A literal
// newline before the closing quote is an error: such strings cannot span
// physical lines.
func (l *Lexer) lexStringBody(quote byte) {
	for {
		c, ok := l.nextByte()
		if !ok {
			return
		}
		switch c {
		case quote:
			l.emit(token.STRING_LITERAL)
			return
		case '\n':
			if quote == '\'' {
				l.emitError("Missing closing single quote.")
			} else {
				l.emitError("Missing closing double quote.")
			}
			l.onNewline()
			return
		case '\\':
			l.lexEscape()
		default:
			l.buffer.WriteByte(c)
		}
	}
}

// lexTripleQuotedBody consumes a triple-quoted body, which may embed raw
// newlines and stray runs of one or two quote characters. It closes only
// on a run of exactly three matching quotes.
func (l *Lexer) lexTripleQuotedBody(quote byte) {
	quoteRun := 0
	for {
		c, ok := l.nextByte()
		if !ok {
			l.emitError("Missing closing triple quote.")
			return
		}
		if c == quote {
			quoteRun++
			if quoteRun == 3 {
				l.emit(token.STRING_LITERAL)
				return
			}
			continue
		}
		for ; quoteRun > 0; quoteRun-- {
			l.buffer.WriteByte(quote)
		}
		switch c {
		case '\\':
			l.lexEscape()
		case '\n':
			l.line++
			l.buffer.WriteByte('\n')
		default:
			l.buffer.WriteByte(c)
		}
	}
}

// lexEscape consumes the character following a backslash inside any
// string body and appends its translation, or the backslash and the
// character verbatim when the pair has no recognized meaning. A
// backslash immediately before a newline is a line continuation: both
// bytes are swallowed and nothing is appended.
func (l *Lexer) lexEscape() {
	c, ok := l.nextByte()
	if !ok {
		return
	}
	if c == '\n' {
		l.line++
		return
	}
	if b, ok := translateEscape(c); ok {
		l.buffer.WriteByte(b)
		return
	}
	l.buffer.WriteByte('\\')
	l.buffer.WriteByte(c)
}
