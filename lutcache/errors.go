package lutcache

import (
	"errors"
	"fmt"
)

// ErrCellIndexOutOfRange indicates a cell coordinate outside [0, Dim).
// Reached only through an internal bug — callers of Lookup never pass
// raw indices, and Indice always clamps into range.
var ErrCellIndexOutOfRange = errors.New("lut cell index out of range")

// CellIndexError wraps ErrCellIndexOutOfRange with the offending
// coordinate.
type CellIndexError struct {
	RI, GI, BI int
}

func (e *CellIndexError) Error() string {
	return fmt.Sprintf("%s: (%d,%d,%d)", ErrCellIndexOutOfRange.Error(), e.RI, e.GI, e.BI)
}

func (e *CellIndexError) Unwrap() error {
	return ErrCellIndexOutOfRange
}

// checkedIndex validates ri/gi/bi are within [0,Dim) before computing
// Index, for callers that didn't get their coordinates from Indice.
func checkedIndex(ri, gi, bi int) (int, error) {
	if ri < 0 || ri >= Dim || gi < 0 || gi >= Dim || bi < 0 || bi >= Dim {
		return 0, &CellIndexError{RI: ri, GI: gi, BI: bi}
	}
	return Index(ri, gi, bi), nil
}
