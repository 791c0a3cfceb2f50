package lexer

// KeywordSet is the caller-supplied table of reserved words checked against
// completed identifier lexemes. Loading one from disk or a config file is
// explicitly out of scope for this package (see SPEC_FULL.md §1); callers
// build one in memory, optionally starting from PythonKeywords.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a KeywordSet from the given words.
func NewKeywordSet(words ...string) KeywordSet {
	set := make(KeywordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether s is a member of the set.
func (k KeywordSet) Contains(s string) bool {
	_, ok := k[s]
	return ok
}

// PythonKeywords is a ready-made KeywordSet covering the reserved words of
// the target surface syntax. Callers are free to build a different set;
// this one exists so the tokenizer is usable out of the box.
var PythonKeywords = NewKeywordSet(
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
)
