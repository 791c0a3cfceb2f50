package lexer

import "github.com/gopylex/pylex/lexer/token"

// lexIndent measures the leading whitespace of a physical line one
// character at a time. It runs both at the very start of input and again
// after every NEWLINE, since stateIndent is the Lexer's resting state
// between logical lines.
func (l *Lexer) lexIndent(c byte) {
	switch c {
	case ' ':
		l.indentWidth++
	case '\t':
		// Round up to the next stop of 8, matching CPython's tokenizer.
		l.indentWidth = (l.indentWidth/8 + 1) * 8
	case '\n':
		l.onNewline()
	case '#':
		l.lexComment()
	default:
		l.resolveIndent()
		l.state = stateInitial
		l.dispatchInitial(c)
	}
}

// resolveIndent compares the width just measured against the indent
// stack, emitting INDENT or one or more DEDENT tokens as needed before
// the line's first real token is dispatched. The very first line of
// input gets special treatment: there is no enclosing block for it to
// indent into, so any width at all is an error rather than a new level.
func (l *Lexer) resolveIndent() {
	l.tokenStartLine = l.line
	l.blankLine = false

	if l.firstLine {
		l.firstLine = false
		if l.indentWidth > 0 {
			l.emitError("Unexpected indent.")
		}
		return
	}

	top := l.indents[len(l.indents)-1]
	switch {
	case l.indentWidth > top:
		l.indents = append(l.indents, l.indentWidth)
		l.emitValue(token.INDENT, "")
	case l.indentWidth < top:
		matched := false
		for _, w := range l.indents {
			if w == l.indentWidth {
				matched = true
				break
			}
		}
		if !matched {
			// The stack is left as it is.
			l.emitError("Dedent does not match to any indentation level.")
			return
		}
		for l.indents[len(l.indents)-1] > l.indentWidth {
			l.indents = l.indents[:len(l.indents)-1]
			l.emitValue(token.DEDENT, "")
		}
	}
}
