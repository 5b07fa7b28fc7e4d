package kernel

import "sync/atomic"

// IDGenerator supplies identifiers for newly created entities. Injecting the
// generator instead of calling NewUUID at every construction site lets tests
// supply deterministic ids and keeps id assignment out of the domain logic.
type IDGenerator interface {
	// NewID returns a fresh, unique identifier.
	NewID() UUID
}

// RandomIDGenerator is the production IDGenerator. It returns random
// version-4 UUIDs and is safe for concurrent use.
type RandomIDGenerator struct{}

// NewRandomIDGenerator creates the production id generator.
func NewRandomIDGenerator() RandomIDGenerator {
	return RandomIDGenerator{}
}

// NewID returns a new random UUID.
func (RandomIDGenerator) NewID() UUID {
	return NewUUID()
}

// SequentialIDGenerator returns a deterministic sequence of UUIDs, intended
// for tests that need stable ids. Ids are derived from an incrementing
// counter embedded in the final bytes of an otherwise fixed UUID.
type SequentialIDGenerator struct {
	counter atomic.Uint64
}

// NewSequentialIDGenerator creates a deterministic id generator starting at 1.
func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{}
}

// NewID returns the next id in the deterministic sequence.
func (g *SequentialIDGenerator) NewID() UUID {
	n := g.counter.Add(1)

	var b [16]byte
	// Version 4 / variant bits keep the result a structurally valid UUID.
	b[6] = 0x40
	b[8] = 0x80
	for i := 15; i >= 9 && n > 0; i-- {
		b[i] = byte(n)
		n >>= 8
	}

	id, err := UUIDFromBytes(b[:])
	if err != nil {
		// Unreachable: the byte layout above is always a valid non-nil UUID.
		panic(err)
	}
	return id
}
