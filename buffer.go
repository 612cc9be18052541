package cryptobox

// Buffer is the growable byte buffer capability used by the in-place
// operations. It is deliberately minimal: read the contents as a slice,
// append bytes, truncate from the end.
//
// Bytes must return the backing storage, not a copy, because the in-place
// operations encrypt and decrypt directly through it. Implementations that
// cannot grow should return an error from Append; the Box operations
// collapse that into ErrOperationFailed.
type Buffer interface {
	// Bytes returns the current contents as a slice of the backing storage.
	Bytes() []byte
	// Append adds p to the end of the buffer, growing it. It returns an
	// error if the buffer cannot accommodate the extra bytes.
	Append(p []byte) error
	// Truncate shortens the buffer to n bytes. It is a no-op if the buffer
	// is already n bytes or shorter.
	Truncate(n int)
}

// SliceBuffer is a Buffer backed by an ordinary byte slice that grows as
// needed. The zero value is an empty buffer ready for use.
type SliceBuffer struct {
	b []byte
}

// NewSliceBuffer returns a SliceBuffer holding b as its initial contents.
// The buffer takes ownership of b.
func NewSliceBuffer(b []byte) *SliceBuffer {
	return &SliceBuffer{b: b}
}

// Bytes returns the backing slice.
func (s *SliceBuffer) Bytes() []byte { return s.b }

// Append grows the buffer by appending p. It never fails.
func (s *SliceBuffer) Append(p []byte) error {
	s.b = append(s.b, p...)
	return nil
}

// Truncate shortens the buffer to n bytes.
func (s *SliceBuffer) Truncate(n int) {
	if n >= 0 && n < len(s.b) {
		s.b = s.b[:n]
	}
}

// FixedBuffer is a Buffer over preallocated storage that refuses to grow
// beyond its capacity, for callers that cannot or will not allocate during
// encryption.
type FixedBuffer struct {
	b []byte
}

// NewFixedBuffer returns a FixedBuffer whose contents are b and whose
// capacity limit is cap(b). The buffer takes ownership of b.
func NewFixedBuffer(b []byte) *FixedBuffer {
	return &FixedBuffer{b: b}
}

// Bytes returns the backing slice.
func (f *FixedBuffer) Bytes() []byte { return f.b }

// Append grows the buffer by appending p, or returns ErrBufferFull if the
// result would exceed the buffer's capacity. On failure the contents are
// unchanged.
func (f *FixedBuffer) Append(p []byte) error {
	if len(f.b)+len(p) > cap(f.b) {
		return ErrBufferFull
	}
	f.b = append(f.b, p...)
	return nil
}

// Truncate shortens the buffer to n bytes.
func (f *FixedBuffer) Truncate(n int) {
	if n >= 0 && n < len(f.b) {
		f.b = f.b[:n]
	}
}
