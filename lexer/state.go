package lexer

import "github.com/gopylex/pylex/lexer/token"

// dfaState tags the lexer's current automaton phase at the point where
// the run loop picks the next logical byte off the cursor. Only two
// phases ever persist across that boundary: ordinary dispatch, and the
// run of leading whitespace at the start of a physical line. Everything
// else a lexeme needs — digits of a number, the body of a string, the
// second character of a compound operator — is resolved within a single
// sub-lexer call and never observed as a standalone phase here, so it
// has no dfaState of its own. dfaState is a disjoint enumeration from
// token.Type; the two are only ever joined through the explicit lookup
// table below, never by name or reflection.
type dfaState int

const (
	stateInitial dfaState = iota
	stateIndent
)

// plainTokens are the delimiters resolved by a single byte with no
// further lookahead: the DFA state such a byte enters and the token type
// it yields are in exact 1:1 correspondence, so this table doubles as
// that lookup, standing in for states that never need a name because
// they are never revisited mid-transition.
var plainTokens = map[byte]token.Type{
	'~': token.BITWISE_NOT,
	'(': token.LEFT_PARENTHESIS,
	')': token.RIGHT_PARENTHESIS,
	'[': token.LEFT_SQUARE_BRACKET,
	']': token.RIGHT_SQUARE_BRACKET,
	'{': token.LEFT_CURLY_BRACKET,
	'}': token.RIGHT_CURLY_BRACKET,
	',': token.COMMA,
	';': token.SEMICOLON,
}
