// Package lexer tokenizes a Python-like surface syntax into a flat slice of
// token.Token values. It is a single pass, single-threaded scan: no
// goroutines, no channels, and no buffering beyond what the indentation
// algorithm and a handful of short lookaheads require.
package lexer

import (
	"strings"

	"github.com/gopylex/pylex/lexer/token"
)

// Lexer holds the mutable state of one scan over a Source. Callers do not
// construct one directly; use Analyze.
type Lexer struct {
	src      Source
	keywords KeywordSet

	tokens []token.Token

	buffer strings.Builder
	state  dfaState

	line           int // zero-based, matches token.Token.Line
	tokenStartLine int

	blankLine   bool
	indentWidth int
	indents     []int
	firstLine   bool

	eofFed bool
}

// Analyze scans src to completion and returns every token produced, in
// order. keywords decides which completed identifiers become KEYWORD
// tokens instead of IDENTIFIER ones; pass PythonKeywords for the
// reference keyword set.
func Analyze(src Source, keywords KeywordSet) []token.Token {
	l := &Lexer{
		src:       src,
		keywords:  keywords,
		state:     stateIndent,
		blankLine: true,
		indents:   []int{0},
		firstLine: true,
	}
	l.run()
	return l.tokens
}

func (l *Lexer) run() {
	for l.stepOnce() {
	}
}

// stepOnce reads one logical byte and routes it to whichever handler owns
// the lexer's current state, reporting whether input remains.
func (l *Lexer) stepOnce() bool {
	c, ok := l.nextByte()
	if !ok {
		return false
	}
	switch l.state {
	case stateIndent:
		l.lexIndent(c)
	default:
		l.dispatchInitial(c)
	}
	return true
}

// nextByte returns the next logical byte of input: a real byte from src,
// or — once src is exhausted — a single synthetic '\n' standing in for
// the newline the DFA is specified to behave as though it had seen, after
// which nextByte reports end of input for good.
func (l *Lexer) nextByte() (byte, bool) {
	if l.eofFed {
		return 0, false
	}
	l.src.Mark()
	c, ok := l.src.Read()
	if ok {
		return c, true
	}
	l.eofFed = true
	return '\n', true
}

// backup un-reads the single most recently returned byte, real or
// synthetic, so the next nextByte/peekByte call returns it again. Valid
// only immediately after a nextByte call, matching Source's single
// outstanding checkpoint.
func (l *Lexer) backup() {
	if l.eofFed {
		l.eofFed = false
		return
	}
	l.src.Reset()
}

// peekByte reports the next logical byte without consuming it.
func (l *Lexer) peekByte() (byte, bool) {
	c, ok := l.nextByte()
	if !ok {
		return 0, false
	}
	l.backup()
	return c, true
}

func (l *Lexer) startToken() {
	l.tokenStartLine = l.line
	l.buffer.Reset()
}

func (l *Lexer) emit(t token.Type) {
	l.tokens = append(l.tokens, token.Token{Type: t, Value: l.buffer.String(), Line: l.tokenStartLine})
	l.blankLine = false
}

func (l *Lexer) emitValue(t token.Type, value string) {
	l.tokens = append(l.tokens, token.Token{Type: t, Value: value, Line: l.tokenStartLine})
	l.blankLine = false
}

func (l *Lexer) emitError(msg string) {
	l.tokens = append(l.tokens, token.Token{Type: token.ERROR, Value: msg, Line: l.tokenStartLine})
	l.blankLine = false
}

// dispatchInitial classifies a freshly encountered character c and drives
// whatever sub-lexer owns lexemes starting with it.
func (l *Lexer) dispatchInitial(c byte) {
	switch {
	case c == '\n':
		l.onNewline()
	case c == 'u' || c == 'U':
		l.startToken()
		l.buffer.WriteByte(c)
		l.lexIdentifierOrStringPrefix()
	case isIdentifierStart(c):
		l.startToken()
		l.buffer.WriteByte(c)
		l.lexKeywordOrIdentifier()
	case c == '0':
		l.startToken()
		l.buffer.WriteByte(c)
		l.lexStartingWithZero()
	case isDecimalDigit(c):
		l.startToken()
		l.buffer.WriteByte(c)
		l.lexDecimalInteger()
	case c == '\'':
		l.startToken()
		l.lexSingleOrTripleQuoted('\'')
	case c == '"':
		l.startToken()
		l.lexDoubleQuoted()
	case c == '\\':
		l.startToken()
		l.lexBackslash()
	case c == '#':
		l.lexComment()
	case isWhitespace(c):
		// Stray horizontal whitespace between tokens on a line already in
		// progress; indentation is only measured at stateIndent.
	case c == '.':
		l.startToken()
		l.buffer.WriteByte(c)
		l.lexDot()
	case c == '+':
		l.startToken()
		l.lexPlus()
	case c == '-':
		l.startToken()
		l.lexMinus()
	case c == '*':
		l.startToken()
		l.lexAsterisk()
	case c == '/':
		l.startToken()
		l.lexSlash()
	case c == '%':
		l.startToken()
		l.lexPercent()
	case c == '@':
		l.startToken()
		l.lexAt()
	case c == '<':
		l.startToken()
		l.lexLess()
	case c == '>':
		l.startToken()
		l.lexGreater()
	case c == '|':
		l.startToken()
		l.lexBitwiseOr()
	case c == '&':
		l.startToken()
		l.lexBitwiseAnd()
	case c == '^':
		l.startToken()
		l.lexBitwiseXor()
	case c == '=':
		l.startToken()
		l.lexEquals()
	case c == ':':
		l.startToken()
		l.lexColon()
	case c == '!':
		l.startToken()
		l.lexExclaim()
	default:
		if tt, ok := plainTokens[c]; ok {
			l.startToken()
			l.emitValue(tt, string(c))
			return
		}
		l.startToken()
		l.emitError("Invalid symbol.")
	}
}

// onNewline implements the shared NEWLINE/blank-line rule: a physical
// newline either closes the current logical line (emitting NEWLINE when
// the line held real content) or, on a blank line, is swallowed outright.
// Either way the next line's leading whitespace is measured from scratch.
func (l *Lexer) onNewline() {
	if !l.blankLine {
		l.tokenStartLine = l.line
		l.emitValue(token.NEWLINE, "")
	}
	l.line++
	l.blankLine = true
	l.indentWidth = 0
	l.state = stateIndent
}
