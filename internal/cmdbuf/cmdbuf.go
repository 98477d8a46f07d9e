// Package cmdbuf provides the bounded command word buffer that pipeline
// state encoders emit into.
package cmdbuf

import "fmt"

// Capacity is the maximum number of 32-bit words a pipeline's state
// commands may occupy. It is sized for the worst-case fully populated
// pipeline: vertex elements for the maximum attribute count plus the
// synthetic element, the Gen7 URB and push-constant partitioning commands,
// and the tessellation fixed-function stubs.
const Capacity = 128

// Buffer is an append-only store of 32-bit command words with a fixed
// capacity. The zero value is an empty buffer ready for use.
//
// Buffer is not safe for concurrent use; each pipeline build owns its own.
type Buffer struct {
	words [Capacity]uint32
	n     int
}

// Reserve returns a writable window of n words at the current tail and
// advances the length. Exceeding Capacity panics: the encoders emitted more
// state than the design accounts for, which is a defect in this package's
// callers, not a caller-recoverable condition.
func (b *Buffer) Reserve(n int) []uint32 {
	if b.n+n > Capacity {
		panic(fmt.Sprintf("cmdbuf: internal error: reserving %d words at length %d exceeds capacity %d", n, b.n, Capacity))
	}
	w := b.words[b.n : b.n+n : b.n+n]
	b.n += n
	return w
}

// Len returns the number of words written so far.
func (b *Buffer) Len() int { return b.n }

// Words returns the written words. The returned slice aliases the buffer's
// storage and must not be modified.
func (b *Buffer) Words() []uint32 { return b.words[:b.n] }
