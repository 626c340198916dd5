package store

// Mode is the aliasing marker carried in the type of element references.
// It is sealed: only Exclusive and Aliased satisfy it.
type Mode interface {
	Exclusive | Aliased
	synchronized() bool
}

// Exclusive marks elements reachable through exactly one live region.
type Exclusive struct{}

func (Exclusive) synchronized() bool { return false }

// Aliased marks elements that another live region may reach concurrently.
type Aliased struct{}

func (Aliased) synchronized() bool { return true }

// Synchronized reports whether references in mode M must use synchronized
// access.
func Synchronized[M Mode]() bool {
	var m M
	return m.synchronized()
}

// ModeName returns "exclusive" or "aliased".
func ModeName[M Mode]() string {
	if Synchronized[M]() {
		return "aliased"
	}
	return "exclusive"
}
