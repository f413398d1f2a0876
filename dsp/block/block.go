package block

// Block wraps a float32 slice with reuse-friendly semantics.
// Processing functions accept raw []float32; use Samples() to bridge.
type Block struct {
	samples []float32
}

// New returns a zero-filled Block of the given length.
func New(length int) *Block {
	if length < 0 {
		length = 0
	}
	return &Block{samples: make([]float32, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Block and vice versa.
func FromSlice(s []float32) *Block {
	return &Block{samples: s}
}

// Samples returns the underlying slice.
func (b *Block) Samples() []float32 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Block) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Block) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Block) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]float32, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Block) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float32, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *Block) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the block.
func (b *Block) Copy() *Block {
	s := make([]float32, len(b.samples))
	copy(s, b.samples)
	return &Block{samples: s}
}
