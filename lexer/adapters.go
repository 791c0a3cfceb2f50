package lexer

import (
	"bufio"
	"strings"
)

// NewStringSource returns a Source over an in-memory string.
func NewStringSource(s string) Source {
	return NewByteSource(bufio.NewReader(strings.NewReader(s)))
}

// NewByteSliceSource returns a Source over an in-memory byte slice.
func NewByteSliceSource(b []byte) Source {
	return NewByteSource(bufio.NewReader(strings.NewReader(string(b))))
}
