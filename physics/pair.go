package physics

// BodyPair is an unordered pair of two distinct bodies, normalized at
// construction so the body with the lower ID is always A. Two pairs made
// from the same bodies compare equal regardless of argument order.
type BodyPair struct {
	A *Body
	B *Body
}

func MakeBodyPair(a, b *Body) BodyPair {
	if b.id < a.id {
		a, b = b, a
	}
	return BodyPair{A: a, B: b}
}

// pairKey is the pair's stable identity, used for per-pass deduplication
// and as the candidate queue's tie-break.
type pairKey struct {
	low  uint64
	high uint64
}

func (p BodyPair) key() pairKey {
	return pairKey{low: p.A.id, high: p.B.id}
}
