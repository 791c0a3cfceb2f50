package lexer

import "github.com/gopylex/pylex/lexer/token"

// The handlers below each own exactly one operator/delimiter family and
// resolve its compound forms (+=, **, ->, <<=, and so on) with one or
// two bytes of non-consuming lookahead via peekByte.

func (l *Lexer) lexPlus() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "+=")
		return
	}
	l.emitValue(token.PLUS, "+")
}

func (l *Lexer) lexMinus() {
	switch c, ok := l.peekByte(); {
	case ok && c == '=':
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "-=")
	case ok && c == '>':
		l.nextByte()
		l.emitValue(token.ARROW, "->")
	default:
		l.emitValue(token.MINUS, "-")
	}
}

func (l *Lexer) lexAsterisk() {
	c, ok := l.peekByte()
	if ok && c == '*' {
		l.nextByte()
		if c2, ok2 := l.peekByte(); ok2 && c2 == '=' {
			l.nextByte()
			l.emitValue(token.ASSIGNMENT_OPERATOR, "**=")
			return
		}
		l.emitValue(token.POWER, "**")
		return
	}
	if ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "*=")
		return
	}
	l.emitValue(token.ASTERISK, "*")
}

func (l *Lexer) lexSlash() {
	c, ok := l.peekByte()
	if ok && c == '/' {
		l.nextByte()
		if c2, ok2 := l.peekByte(); ok2 && c2 == '=' {
			l.nextByte()
			l.emitValue(token.ASSIGNMENT_OPERATOR, "//=")
			return
		}
		l.emitValue(token.DOUBLE_SLASH, "//")
		return
	}
	if ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "/=")
		return
	}
	l.emitValue(token.SLASH, "/")
}

func (l *Lexer) lexPercent() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "%=")
		return
	}
	l.emitValue(token.PERCENT, "%")
}

func (l *Lexer) lexAt() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "@=")
		return
	}
	l.emitValue(token.AT, "@")
}

func (l *Lexer) lexLess() {
	switch c, ok := l.peekByte(); {
	case ok && c == '<':
		l.nextByte()
		if c2, ok2 := l.peekByte(); ok2 && c2 == '=' {
			l.nextByte()
			l.emitValue(token.ASSIGNMENT_OPERATOR, "<<=")
			return
		}
		l.emitValue(token.LEFT_SHIFT, "<<")
	case ok && c == '=':
		l.nextByte()
		l.emitValue(token.LESS_EQUAL, "<=")
	default:
		l.emitValue(token.LESS, "<")
	}
}

func (l *Lexer) lexGreater() {
	switch c, ok := l.peekByte(); {
	case ok && c == '>':
		l.nextByte()
		if c2, ok2 := l.peekByte(); ok2 && c2 == '=' {
			l.nextByte()
			l.emitValue(token.ASSIGNMENT_OPERATOR, ">>=")
			return
		}
		l.emitValue(token.RIGHT_SHIFT, ">>")
	case ok && c == '=':
		l.nextByte()
		l.emitValue(token.GREATER_EQUAL, ">=")
	default:
		l.emitValue(token.GREATER, ">")
	}
}

func (l *Lexer) lexBitwiseOr() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "|=")
		return
	}
	l.emitValue(token.BITWISE_OR, "|")
}

func (l *Lexer) lexBitwiseAnd() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "&=")
		return
	}
	l.emitValue(token.BITWISE_AND, "&")
}

func (l *Lexer) lexBitwiseXor() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.ASSIGNMENT_OPERATOR, "^=")
		return
	}
	l.emitValue(token.BITWISE_XOR, "^")
}

func (l *Lexer) lexEquals() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.EQUAL, "==")
		return
	}
	l.emitValue(token.ASSIGN, "=")
}

func (l *Lexer) lexColon() {
	if c, ok := l.peekByte(); ok && c == '=' {
		l.nextByte()
		l.emitValue(token.COLON_ASSIGN, ":=")
		return
	}
	l.emitValue(token.COLON, ":")
}

// lexExclaim handles a bare '!'. The only two legal continuations are
// '=', forming the NOT_EQUAL operator, and '(', which is left
// unconsumed for the next dispatch since a bare '!' immediately before a
// parenthesized expression is itself a valid token here. Anything else
// is an error.
func (l *Lexer) lexExclaim() {
	c, ok := l.peekByte()
	switch {
	case ok && c == '=':
		l.nextByte()
		l.emitValue(token.NOT_EQUAL, "!=")
	case ok && c == '(':
		l.emitValue(token.EXCLAMATION_MARK, "!")
	default:
		l.emitError("Error. '!=' operator expected.")
	}
}
