package lexer

import (
	"io"
	"sync"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/gopylex/pylex/lexer/token"
)

// participleLexer adapts a fully-scanned []token.Token into participle's
// pull-based lexer.Lexer interface. The core scanner is a batch, single-
// pass DFA; this is the only place that pretends otherwise, so that a
// participle grammar can consume pylex's output directly.
type participleLexer struct {
	filename string
	tokens   []token.Token
	pos      int
}

func (p *participleLexer) Next() (plexer.Token, error) {
	if p.pos >= len(p.tokens) {
		return plexer.Token{
			Type: plexer.TokenType(token.EOF),
			Pos:  plexer.Position{Filename: p.filename},
		}, nil
	}
	t := p.tokens[p.pos]
	p.pos++
	return plexer.Token{
		Type:  plexer.TokenType(t.Type),
		Value: t.Value,
		Pos:   plexer.Position{Filename: p.filename, Line: t.Line},
	}, nil
}

// LexerDefinition implements participle's lexer.Definition, running the
// full pylex scan up front and replaying the result through Next.
// Keywords is the KeywordSet consulted while scanning; a zero-value
// LexerDefinition uses PythonKeywords.
type LexerDefinition struct {
	Keywords KeywordSet
}

func (d *LexerDefinition) keywordSet() KeywordSet {
	if d.Keywords != nil {
		return d.Keywords
	}
	return PythonKeywords
}

func (d *LexerDefinition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, b)
}

func (d *LexerDefinition) LexString(filename string, input string) (plexer.Lexer, error) {
	tokens := Analyze(NewStringSource(input), d.keywordSet())
	return &participleLexer{filename: filename, tokens: tokens}, nil
}

func (d *LexerDefinition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	tokens := Analyze(NewByteSliceSource(input), d.keywordSet())
	return &participleLexer{filename: filename, tokens: tokens}, nil
}

var (
	cachedSymbols map[string]plexer.TokenType
	symbolsOnce   sync.Once
)

// Symbols implements participle's lexer.Definition, caching the name ->
// type table the first time it's needed.
func (d *LexerDefinition) Symbols() map[string]plexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = make(map[string]plexer.TokenType, len(token.Symbols))
		for tt, name := range token.Symbols {
			cachedSymbols[name] = plexer.TokenType(tt)
		}
	})
	return cachedSymbols
}
