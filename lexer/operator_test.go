package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopylex/pylex/lexer/token"
)

func TestCompoundAssignmentOperators(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"+=", "+="},
		{"-=", "-="},
		{"*=", "*="},
		{"**=", "**="},
		{"/=", "/="},
		{"//=", "//="},
		{"%=", "%="},
		{"@=", "@="},
		{"<<=", "<<="},
		{">>=", ">>="},
		{"|=", "|="},
		{"&=", "&="},
		{"^=", "^="},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t,
				[]token.Token{tok(token.ASSIGNMENT_OPERATOR, tt.value, 0), tok(token.NEWLINE, "", 0)},
				lexAll(t, tt.input+"\n"))
		})
	}
}

func TestTwoWayOperators(t *testing.T) {
	tests := []struct {
		input string
		tt    token.Type
	}{
		{"-", token.MINUS},
		{"->", token.ARROW},
		{"*", token.ASTERISK},
		{"**", token.POWER},
		{"/", token.SLASH},
		{"//", token.DOUBLE_SLASH},
		{"<", token.LESS},
		{"<<", token.LEFT_SHIFT},
		{"<=", token.LESS_EQUAL},
		{">", token.GREATER},
		{">>", token.RIGHT_SHIFT},
		{">=", token.GREATER_EQUAL},
		{"=", token.ASSIGN},
		{"==", token.EQUAL},
		{":", token.COLON},
		{":=", token.COLON_ASSIGN},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t,
				[]token.Token{tok(tt.tt, tt.input, 0), tok(token.NEWLINE, "", 0)},
				lexAll(t, tt.input+"\n"))
		})
	}
}

func TestExclaimBeforeParenIsPreserved(t *testing.T) {
	assert.Equal(t,
		[]token.Token{
			tok(token.EXCLAMATION_MARK, "!", 0),
			tok(token.LEFT_PARENTHESIS, "(", 0),
			tok(token.IDENTIFIER, "x", 0),
			tok(token.RIGHT_PARENTHESIS, ")", 0),
			tok(token.NEWLINE, "", 0),
		},
		lexAll(t, "!(x)\n"))
}

func TestExclaimEqual(t *testing.T) {
	assert.Equal(t,
		[]token.Token{tok(token.NOT_EQUAL, "!=", 0), tok(token.NEWLINE, "", 0)},
		lexAll(t, "!=\n"))
}

func TestBareExclaimIsAnError(t *testing.T) {
	tokens := lexAll(t, "! x\n")
	assert.Equal(t, token.ERROR, tokens[0].Type)
	assert.Equal(t, "Error. '!=' operator expected.", tokens[0].Value)
}

func TestLoneExclaimAtEOF(t *testing.T) {
	tokens := lexAll(t, "!")
	assert.Equal(t, token.ERROR, tokens[0].Type)
	assert.Equal(t, "Error. '!=' operator expected.", tokens[0].Value)
}

func TestPlainDelimiters(t *testing.T) {
	input := "~()[]{},;"
	expected := []token.Token{
		tok(token.BITWISE_NOT, "~", 0),
		tok(token.LEFT_PARENTHESIS, "(", 0),
		tok(token.RIGHT_PARENTHESIS, ")", 0),
		tok(token.LEFT_SQUARE_BRACKET, "[", 0),
		tok(token.RIGHT_SQUARE_BRACKET, "]", 0),
		tok(token.LEFT_CURLY_BRACKET, "{", 0),
		tok(token.RIGHT_CURLY_BRACKET, "}", 0),
		tok(token.COMMA, ",", 0),
		tok(token.SEMICOLON, ";", 0),
		tok(token.NEWLINE, "", 0),
	}
	assert.Equal(t, expected, lexAll(t, input+"\n"))
}

func TestBackslashLineContinuation(t *testing.T) {
	assert.Equal(t,
		[]token.Token{
			tok(token.IDENTIFIER, "x", 0),
			tok(token.PLUS, "+", 0),
			tok(token.IDENTIFIER, "y", 1),
			tok(token.NEWLINE, "", 1),
		},
		lexAll(t, "x + \\\ny\n"))
}

func TestBackslashNotFollowedByNewlineIsAnError(t *testing.T) {
	tokens := lexAll(t, "x = \\y\n")
	var errTok *token.Token
	for i := range tokens {
		if tokens[i].Type == token.ERROR {
			errTok = &tokens[i]
			break
		}
	}
	if assert.NotNil(t, errTok) {
		assert.Equal(t, "Backslash does not continue a line.", errTok.Value)
	}
	// The character after the backslash is rewound and re-lexed normally.
	var sawY bool
	for _, tk := range tokens {
		if tk.Type == token.IDENTIFIER && tk.Value == "y" {
			sawY = true
		}
	}
	assert.True(t, sawY)
}
