// Package lexer turns Python-like source text into a flat stream of
// tokens: identifiers and keywords, the four numeric-literal radixes,
// the four string-literal flavors, every operator and delimiter, and
// the NEWLINE/INDENT/DEDENT triad that makes the off-side rule visible
// to a downstream parser. See the token subpackage for the token
// vocabulary and LexerDefinition for participle interop.
package lexer
