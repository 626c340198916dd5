package bitrange

import (
	"errors"
	"fmt"
)

// NoLimit disables the upper-bound check in Validate.
const NoLimit = -1

var (
	// ErrMalformed is matched by every *MalformedError.
	ErrMalformed = errors.New("bitrange: malformed range")
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("bitrange: range out of bounds")
)

// BoundKind describes one endpoint of a range expression.
type BoundKind uint8

const (
	// Unbounded means the endpoint was omitted.
	Unbounded BoundKind = iota
	// Included means the endpoint index is part of the range.
	Included
	// Excluded means the endpoint index is not part of the range.
	Excluded
)

// Bound is a single range endpoint.
type Bound struct {
	Kind BoundKind
	N    int
}

// Bounds is an unnormalized range expression.
type Bounds struct {
	Start Bound
	End   Bound
}

// Full is the `..` range.
func Full() Bounds { return Bounds{} }

// Span is the half-open `start..end` range.
func Span(start, end int) Bounds {
	return Bounds{Start: Bound{Included, start}, End: Bound{Excluded, end}}
}

// SpanInclusive is the closed `start..=end` range.
func SpanInclusive(start, end int) Bounds {
	return Bounds{Start: Bound{Included, start}, End: Bound{Included, end}}
}

// From is the `start..` range.
func From(start int) Bounds {
	return Bounds{Start: Bound{Included, start}}
}

// To is the `..end` range.
func To(end int) Bounds {
	return Bounds{End: Bound{Excluded, end}}
}

// ToInclusive is the `..=end` range.
func ToInclusive(end int) Bounds {
	return Bounds{End: Bound{Included, end}}
}

// Range is a normalized half-open range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r. Malformed ranges report zero.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d .. %d", r.Start, r.End)
}

// Normalize converts b into a concrete Range, using end when b has no end
// bound. The result may exceed end; callers validate separately.
func Normalize(b Bounds, end int) Range {
	var r Range
	switch b.Start.Kind {
	case Included:
		r.Start = b.Start.N
	case Excluded:
		r.Start = b.Start.N + 1
	default:
		r.Start = 0
	}
	switch b.End.Kind {
	case Included:
		r.End = b.End.N + 1
	case Excluded:
		r.End = b.End.N
	default:
		r.End = end
	}
	return r
}

// MalformedError reports a range whose start lies after its end.
type MalformedError struct {
	Start int
	End   int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed range: `%d .. %d` must run from lower to higher", e.Start, e.End)
}

// Is reports whether target is ErrMalformed.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// OutOfBoundsError reports a range that ends past its permitted limit.
type OutOfBoundsError struct {
	Start int
	End   int
	Limit int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("range out of bounds: `%d .. %d` must not exceed `%d`", e.Start, e.End, e.Limit)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Validate checks that r runs from lower to higher and, unless limit is
// NoLimit, that it does not extend past limit.
func Validate(r Range, limit int) error {
	if r.Start < 0 || r.Start > r.End {
		return &MalformedError{Start: r.Start, End: r.End}
	}
	if limit != NoLimit && r.End > limit {
		return &OutOfBoundsError{Start: r.Start, End: r.End, Limit: limit}
	}
	return nil
}

// Resolve normalizes b against limit and validates the result against the
// same limit.
func Resolve(b Bounds, limit int) (Range, error) {
	r := Normalize(b, limit)
	if err := Validate(r, limit); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Assert panics with the Validate error if r is not valid.
func Assert(r Range, limit int) {
	if err := Validate(r, limit); err != nil {
		panic(err)
	}
}

// AssertIndex panics unless 0 <= i < limit.
func AssertIndex(i, limit int) {
	if i < 0 || i >= limit {
		panic(&OutOfBoundsError{Start: i, End: i + 1, Limit: limit})
	}
}
