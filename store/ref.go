package store

// Ref is a reference to one storage element, tagged with its aliasing mode.
// It is the same size as *T; the mode only selects the access strategy.
type Ref[T Element, M Mode] struct {
	p *T
}

// RefOf wraps p in mode M. Choosing M is the caller's claim about who else
// can reach *p; see MarkAliased and UnmarkAliased for the rules.
func RefOf[T Element, M Mode](p *T) Ref[T, M] {
	return Ref[T, M]{p: p}
}

// Ptr returns the element address.
func (r Ref[T, M]) Ptr() *T { return r.p }

// Load reads the element.
func (r Ref[T, M]) Load() T {
	if Synchronized[M]() {
		return Access(r.p).Load()
	}
	return *r.p
}

// Store overwrites the element.
func (r Ref[T, M]) Store(v T) {
	if Synchronized[M]() {
		Access(r.p).Store(v)
		return
	}
	*r.p = v
}

// SetBits sets every bit in mask.
func (r Ref[T, M]) SetBits(mask T) {
	if Synchronized[M]() {
		Access(r.p).Or(mask)
		return
	}
	*r.p |= mask
}

// ClearBits clears every bit in mask.
func (r Ref[T, M]) ClearBits(mask T) {
	if Synchronized[M]() {
		Access(r.p).And(^mask)
		return
	}
	*r.p &^= mask
}

// Write sets or clears the bits in mask.
func (r Ref[T, M]) Write(mask T, bit bool) {
	if bit {
		r.SetBits(mask)
	} else {
		r.ClearBits(mask)
	}
}
