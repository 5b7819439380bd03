package mines

import "fmt"

// IndexError is raised (via panic) when a cell index falls outside the
// board. It signals a programmer error: callers facing untrusted input are
// expected to check [Geometry.ValidIndex] or [Geometry.ValidatePoint] first.
type IndexError struct {
	Index, Len int
}

// [IndexError] implements [error]
func (e IndexError) Error() string {
	return fmt.Sprintf("cell index %d out of range [0, %d)", e.Index, e.Len)
}
