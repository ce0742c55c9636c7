// Package lutcache implements the concurrent, lazily-filled 16x16x16
// RGB-to-coat-levels lookup table described in spec.md §4.6.
package lutcache

import (
	"sync/atomic"
	"time"
)

// Dim is the per-axis resolution of the cache grid (spec.md §4.6).
const Dim = 16

const (
	unfilled int32 = iota
	filling
	filled
)

// pollInterval is how long a requester sleeps while another goroutine
// is filling the cell it wants (spec.md §4.6).
const pollInterval = 3 * time.Millisecond

type cell struct {
	state  atomic.Int32
	levels []float32
}

// Cache is the 16x16x16 grid of lazily-computed coat-level vectors.
// Safe for concurrent use: each cell is filled by at most one caller,
// with concurrent requesters polling until that fill completes.
type Cache struct {
	cells     [Dim * Dim * Dim]cell
	fillCount atomic.Int64
}

// New returns an empty cache; every cell starts unfilled.
func New() *Cache {
	return &Cache{}
}

// Index maps a 3D grid coordinate to its flat cell index.
func Index(ri, gi, bi int) int {
	return ri*Dim*Dim + gi*Dim + bi
}

// EnsureFilled returns the coat-level vector for cell (ri,gi,bi),
// computing it via fill on first request. Exactly one caller per cell
// ever runs fill; concurrent callers poll at pollInterval until the
// fill completes (spec.md §4.6, §5 "single separator run per cell").
func (c *Cache) EnsureFilled(ri, gi, bi int, fill func() []float32) []float32 {
	cl := &c.cells[Index(ri, gi, bi)]

	if cl.state.CompareAndSwap(unfilled, filling) {
		cl.levels = fill()
		c.fillCount.Add(1)
		cl.state.Store(filled)
		return cl.levels
	}

	for cl.state.Load() != filled {
		time.Sleep(pollInterval)
	}
	return cl.levels
}

// FillCount reports how many cells have been computed so far — a debug
// aid for tests asserting "fills once, not once per concurrent caller".
func (c *Cache) FillCount() int64 {
	return c.fillCount.Load()
}

// ValidateCoord confirms ri/gi/bi lie within [0,Dim), returning a
// *CellIndexError otherwise. EnsureFilled/Lookup trust their callers and
// never run this check on the hot path; it exists for callers (or
// tests) constructing coordinates themselves instead of going through
// Indice.
func (c *Cache) ValidateCoord(ri, gi, bi int) error {
	_, err := checkedIndex(ri, gi, bi)
	return err
}
