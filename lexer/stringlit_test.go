package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopylex/pylex/lexer/token"
)

func TestEmptyStrings(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, "''\n"))

	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, "\"\"\n"))
}

func TestEmptyTripleQuotedString(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, "''''''\n"))
}

func TestStringPrefix(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "hi", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, "u'hi'\n"))

	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "hi", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, `U"hi"`+"\n"))
}

func TestIdentifierStartingWithUIsNotConfusedForAPrefix(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.IDENTIFIER, "unicode", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, "unicode\n"))
}

func TestUnterminatedSingleQuotedString(t *testing.T) {
	tokens := lexAll(t, "'abc\n")
	assert.Equal(t, token.ERROR, tokens[0].Type)
	assert.Equal(t, "Missing closing single quote.", tokens[0].Value)
}

func TestUnterminatedDoubleQuotedString(t *testing.T) {
	tokens := lexAll(t, "\"abc\n")
	assert.Equal(t, token.ERROR, tokens[0].Type)
	assert.Equal(t, "Missing closing double quote.", tokens[0].Value)
}

func TestUnterminatedTripleQuotedStringAtEOF(t *testing.T) {
	tokens := lexAll(t, "'''abc")
	var found bool
	for _, tk := range tokens {
		if tk.Type == token.ERROR {
			found = true
			assert.Equal(t, "Missing closing triple quote.", tk.Value)
		}
	}
	assert.True(t, found)
}

func TestStringEscapes(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "a\tb\nc", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, `'a\tb\nc'`+"\n"))
}

func TestUnknownEscapeIsPreservedVerbatim(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, `\q`, 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, `'\q'`+"\n"))
}

func TestTripleQuotedStringPreservesInternalQuotes(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.STRING_LITERAL, "it's quoted", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, `'''it's quoted'''`+"\n"))
}
