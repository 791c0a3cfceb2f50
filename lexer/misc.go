package lexer

// lexComment consumes a '#' comment through to (but not including) the
// terminating newline, which it hands to onNewline so the usual
// blank-line and indentation bookkeeping still applies to comment-only
// lines.
func (l *Lexer) lexComment() {
	for {
		c, ok := l.nextByte()
		if !ok {
			return
		}
		if c == '\n' {
			l.onNewline()
			return
		}
	}
}

// lexBackslash handles a line-continuation backslash appearing outside
// any string. It is only valid when followed, possibly after trailing
// horizontal whitespace, by a newline; anything else cancels it with an
// error, since a bare backslash is not itself a token in this syntax.
func (l *Lexer) lexBackslash() {
	for {
		c, ok := l.peekByte()
		if !ok || !isWhitespace(c) {
			break
		}
		l.nextByte()
	}
	c, ok := l.nextByte()
	if ok && c == '\n' {
		l.line++
		return
	}
	if ok {
		l.backup()
	}
	l.emitError("Backslash does not continue a line.")
}
