package lexer

import "github.com/gopylex/pylex/lexer/token"

// lexIdentifierOrStringPrefix disambiguates a leading 'u'/'U': it either
// introduces a unicode-string prefix immediately followed by a quote, or
// is simply the first letter of an ordinary identifier such as "url".
func (l *Lexer) lexIdentifierOrStringPrefix() {
	c, ok := l.peekByte()
	if ok && c == '\'' {
		l.nextByte()
		l.buffer.Reset() // discard the speculative 'u'/'U'; it is not part of the string's value
		l.lexSingleOrTripleQuoted('\'')
		return
	}
	if ok && c == '"' {
		l.nextByte()
		l.buffer.Reset()
		l.lexDoubleQuoted()
		return
	}
	l.lexKeywordOrIdentifier()
}

// lexKeywordOrIdentifier consumes the remaining identifier-continue
// characters and classifies the completed word against the lexer's
// keyword set.
func (l *Lexer) lexKeywordOrIdentifier() {
	for {
		c, ok := l.peekByte()
		if !ok || !isIdentifierContinue(c) {
			break
		}
		l.nextByte()
		l.buffer.WriteByte(c)
	}
	if l.keywords.Contains(l.buffer.String()) {
		l.emit(token.KEYWORD)
		return
	}
	l.emit(token.IDENTIFIER)
}
