package lexer

import "io"

// ringSize bounds how far Reset can rewind. The DFA's deepest checkpoint is
// the exponent path (mark before 'e'/'E', read up to two more bytes before
// deciding), so 3 bytes would suffice; 8 leaves headroom without paying for
// an unbounded buffer the way the source language's mark(Integer.MAX_VALUE)
// pattern did.
const ringSize = 8

// Source is a cursor over input bytes with a single outstanding checkpoint.
// Implementations need not support nested Mark calls: the DFA only ever
// marks, reads a short lookahead, and either keeps going or resets.
type Source interface {
	// Read returns the next byte, or ok=false at end of input.
	Read() (b byte, ok bool)
	// Mark remembers the current position for a later Reset.
	Mark()
	// Reset rewinds the cursor to the position of the last Mark.
	Reset()
}

// byteSource adapts an io.Reader into a Source with bounded rewind, backed
// by a small ring buffer of recently read bytes.
type byteSource struct {
	r   io.ByteReader
	buf [ringSize]byte
	pos int64 // total bytes read so far (virtual stream position)

	marked  bool
	markPos int64

	replay   []byte
	replayAt int
}

// NewByteSource adapts r into a Source. If r does not already implement
// io.ByteReader it is wrapped accordingly by the caller (see NewStringSource
// and NewByteSliceSource for ready-made adapters that always do).
func NewByteSource(r io.ByteReader) Source {
	return &byteSource{r: r}
}

func (s *byteSource) Read() (byte, bool) {
	if s.replayAt < len(s.replay) {
		b := s.replay[s.replayAt]
		s.replayAt++
		if s.replayAt == len(s.replay) {
			s.replay = nil
			s.replayAt = 0
		}
		s.record(b)
		return b, true
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	s.record(b)
	return b, true
}

func (s *byteSource) record(b byte) {
	s.buf[s.pos%ringSize] = b
	s.pos++
}

func (s *byteSource) Mark() {
	s.marked = true
	s.markPos = s.pos
}

func (s *byteSource) Reset() {
	if !s.marked {
		panic("lexer: Reset called without a preceding Mark")
	}
	distance := s.pos - s.markPos
	if distance > ringSize {
		panic("lexer: Reset distance exceeds the byte source's rewind window")
	}
	if distance > 0 {
		out := make([]byte, distance, distance+int64(len(s.replay)-s.replayAt))
		for i := int64(0); i < distance; i++ {
			out[i] = s.buf[(s.markPos+i)%ringSize]
		}
		// Bytes rewound by an earlier Reset and not yet re-read still
		// follow the span just rewound.
		out = append(out, s.replay[s.replayAt:]...)
		s.replay = out
		s.replayAt = 0
	}
	s.pos = s.markPos
	s.marked = false
}

// Peek returns the next byte without consuming it, using the same
// Mark/Read/Reset primitives Source already exposes: the DFA has no
// separate "peek" capability, only bounded lookahead built from a
// checkpoint and a rewind.
func Peek(src Source) (byte, bool) {
	src.Mark()
	b, ok := src.Read()
	src.Reset()
	return b, ok
}
