package store

// Value is an element value tagged with the mode of the reference it was
// read through or is destined for.
type Value[T Element, M Mode] struct {
	v T
}

// Raw returns the untagged value.
func (v Value[T, M]) Raw() T { return v.v }

// MarkAliased retags an exclusive reference as aliased.
//
// Precondition: from this point on the caller treats the element as
// reachable through another live region.
func MarkAliased[T Element](r Ref[T, Exclusive]) Ref[T, Aliased] {
	return Ref[T, Aliased]{p: r.p}
}

// UnmarkAliased retags an aliased reference as exclusive.
//
// Precondition: no other live region can reach the element any more (the
// overlapping region was consumed, or the owning buffer is being torn down).
func UnmarkAliased[T Element](r Ref[T, Aliased]) Ref[T, Exclusive] {
	return Ref[T, Exclusive]{p: r.p}
}

// AliasValue tags a plain value (a mask, or a value to be stored) for use
// with aliased references.
func AliasValue[T Element](v T) Value[T, Aliased] {
	return Value[T, Aliased]{v: v}
}

// RemoveAlias strips the aliased tag from a value. The value is a local
// copy, so it can be used for unsynchronized computation.
func RemoveAlias[T Element](v Value[T, Aliased]) T {
	return v.v
}

// LoadAliased performs a synchronized load through r and returns the value
// with the alias tag removed.
func LoadAliased[T Element](r Ref[T, Aliased]) T {
	return RemoveAlias(AliasValue(Access(r.p).Load()))
}

// StoreAliased writes a tagged value through an aliased reference.
func StoreAliased[T Element](r Ref[T, Aliased], v Value[T, Aliased]) {
	Access(r.p).Store(v.v)
}
