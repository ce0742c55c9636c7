package coat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hodefoting/luz/spectrum"
)

func flat(v float32) spectrum.Spectrum {
	var s spectrum.Spectrum
	for i := range s {
		s[i] = v
	}
	return s
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, float32(1), c.Scale)
	assert.Equal(t, float32(1), c.TRCGamma)
	assert.Equal(t, 0, c.Levels)
}

func TestRecomputeClampsAndFloors(t *testing.T) {
	c := New()
	c.OnWhite = flat(0) // below floor
	c.OnBlack = flat(1)
	c.Recompute()
	for i := 0; i < spectrum.Bands; i++ {
		assert.GreaterOrEqual(t, c.Opaqueness[i], float32(0))
		assert.LessOrEqual(t, c.Opaqueness[i], float32(1))
	}
	// on_black/floor(1e-5) is huge, so clamped to 1.
	assert.Equal(t, flat(1), c.Opaqueness)
}

func TestRecomputeMidOpaqueness(t *testing.T) {
	c := New()
	c.OnWhite = flat(1)
	c.OnBlack = flat(0.5)
	c.Recompute()
	assert.InDelta(t, 0.5, c.Opaqueness[0], 1e-6)
}

func TestComposeZeroCoverageIsIdentity(t *testing.T) {
	c := New()
	c.OnWhite = flat(0.2)
	c.OnBlack = flat(0)
	c.Recompute()

	s := flat(0.7)
	out := Compose(s, c, 0)
	assert.Equal(t, s, out)
}

func TestComposeFullCoatLikeCoverage(t *testing.T) {
	// opaqueness 0 (pure coat/ink, as the default on_black=0 yields under
	// non-zero on_white); set directly so the test does not depend on
	// Recompute.
	c := New()
	c.OnWhite = flat(0.25)
	c.Opaqueness = flat(0)

	s := flat(1.0)
	out := Compose(s, c, 1.0)
	// at full coverage, coat-like: band = on_white * band
	assert.InDelta(t, 0.25, out[0], 1e-6)
}

func TestComposeFullPaintLikeCoverage(t *testing.T) {
	c := New()
	c.OnWhite = flat(0.25)
	c.Opaqueness = flat(1)

	s := flat(1.0)
	out := Compose(s, c, 1.0)
	// at full coverage, paint-like: band = on_white directly
	assert.InDelta(t, 0.25, out[0], 1e-6)
}

func TestComposeAppliesGammaThenScale(t *testing.T) {
	c := New()
	c.TRCGamma = 2.0
	c.Scale = 0.5
	c.OnWhite = flat(0.0) // coat-like band goes to 0 at any nonzero coverage
	c.Opaqueness = flat(0)

	s := flat(1.0)
	out := Compose(s, c, 1.0) // coverage = (1^2)*0.5 = 0.5
	// sub = lerp(1, 0, 0.5) = 0.5
	assert.InDelta(t, 0.5, out[0], 1e-6)
}

func TestQuantizeContinuousWhenLevelsBelow2(t *testing.T) {
	c := New()
	assert.InDelta(t, 0.37, c.Quantize(0.37), 1e-6)
}

func TestQuantizeBinary(t *testing.T) {
	c := New()
	c.Levels = 2
	assert.Equal(t, float32(0), c.Quantize(0.2))
	assert.Equal(t, float32(1), c.Quantize(0.6))
}
