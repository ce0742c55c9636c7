package luz

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hodefoting/luz/spectrum"
)

const twoCoatConfig = `
coat1 = rgb 1 0 0
coat1.black = rgb 0.1 0 0
coat2 = rgb 0 0 1
coat2.black = rgb 0 0 0.1
coatlimit = 2
iterations = 60
diffusion = 0.15
`

func TestNewParsesBuiltinDefaults(t *testing.T) {
	e := New("")
	assert.Equal(t, 0, e.GetCoatCount())
	assert.Greater(t, e.GetCoverageLimit(), float32(0))
}

func TestNewAppliesCoatConfig(t *testing.T) {
	e := New(twoCoatConfig)
	assert.Equal(t, 2, e.GetCoatCount())
	assert.Equal(t, float32(2), e.GetCoverageLimit())
}

func TestSetConfigIsNoopWhenUnchanged(t *testing.T) {
	e := New(twoCoatConfig)
	before := e.lut
	e.SetConfig(twoCoatConfig)
	assert.Same(t, before, e.lut)
}

func TestSetConfigRebuildsOnChange(t *testing.T) {
	e := New(twoCoatConfig)
	before := e.lut
	e.SetConfig(twoCoatConfig + "\ncoatlimit = 1.5\n")
	assert.NotSame(t, before, e.lut)
	assert.Equal(t, float32(1.5), e.GetCoverageLimit())
}

func TestSetCoatCountRejectsOutOfRange(t *testing.T) {
	e := New(twoCoatConfig)
	err := e.SetCoatCount(-1)
	require.Error(t, err)
	var ccErr *CoatCountError
	require.ErrorAs(t, err, &ccErr)
	assert.ErrorIs(t, err, ErrCoatCountOutOfRange)

	err = e.SetCoatCount(17)
	require.Error(t, err)
}

func TestSetCoatCountWithinRangeSucceeds(t *testing.T) {
	e := New(twoCoatConfig)
	require.NoError(t, e.SetCoatCount(1))
	assert.Equal(t, 1, e.GetCoatCount())
}

func TestGetSetSpectrumRoundTrips(t *testing.T) {
	e := New(twoCoatConfig)
	s := e.RGBToSpectrum(0.2, 0.4, 0.6)
	e.SetSpectrum("custom", s)
	assert.Equal(t, s, e.GetSpectrum("custom"))
}

func TestGetSpectrumUnknownReturnsZeroValue(t *testing.T) {
	e := New(twoCoatConfig)
	var zeroSpectrum spectrum.Spectrum
	assert.Equal(t, zeroSpectrum, e.GetSpectrum("nonexistent"))

	_, err := e.LookupSpectrum("nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSpectrum))
}

func TestLookupSpectrumKnownNameSucceeds(t *testing.T) {
	e := New(twoCoatConfig)
	_, err := e.LookupSpectrum("illuminant")
	assert.NoError(t, err)
}

func TestCoatAtOutOfRangeReportsError(t *testing.T) {
	e := New(twoCoatConfig)
	_, err := e.CoatAt(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCoatIndexOutOfRange))

	c, err := e.CoatAt(0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), c.Scale)
}

func TestDiagnoseTuningPassesAfterClamping(t *testing.T) {
	e := New(twoCoatConfig)
	assert.NoError(t, e.DiagnoseTuning())
}

func TestCoatsToRGBChangesWithCoatLevel(t *testing.T) {
	e := New(twoCoatConfig)
	r0, g0, b0 := e.CoatsToRGB([]float32{0, 0})
	r1, g1, b1 := e.CoatsToRGB([]float32{1, 0})
	assert.NotEqual(t, [3]float32{r0, g0, b0}, [3]float32{r1, g1, b1})
}

func TestCoatsToSpectrumIgnoresLevelsBeyondCoatCount(t *testing.T) {
	e := New(twoCoatConfig)
	short := e.CoatsToSpectrum([]float32{0.5, 0})
	long := e.CoatsToSpectrum([]float32{0.5, 0, 0.9})
	assert.Equal(t, short, long)
}

func TestSpectrumToRGBAndXYZAreConsistent(t *testing.T) {
	e := New(twoCoatConfig)
	sp := e.CoatsToSpectrum([]float32{0.3, 0.7})
	x, y, z := e.SpectrumToXYZ(sp)
	r, g, b := e.SpectrumToRGB(sp)
	wantR, wantG, wantB := XYZToRGBForTest(x, y, z)
	assert.InDelta(t, wantR, r, 1e-5)
	assert.InDelta(t, wantG, g, 1e-5)
	assert.InDelta(t, wantB, b, 1e-5)
}

func TestRGBToCoatsReturnsCorrectLength(t *testing.T) {
	e := New(twoCoatConfig)
	levels := e.RGBToCoats(0.5, 0.5, 0.5)
	assert.Len(t, levels, 2)
}

func TestRGBToCoatsZeroCoatsReturnsNil(t *testing.T) {
	e := New("")
	assert.Nil(t, e.RGBToCoats(0.5, 0.5, 0.5))
}

func TestRGBToCoatsRoundTripsApproximately(t *testing.T) {
	e := New(twoCoatConfig)
	levels := []float32{1, 0}
	r, g, b := e.CoatsToRGB(levels)

	recovered := e.RGBToCoats(r, g, b)
	require.Len(t, recovered, 2)

	rr, rg, rb := e.CoatsToRGB(recovered)
	assert.InDelta(t, r, rr, 0.2)
	assert.InDelta(t, g, rg, 0.2)
	assert.InDelta(t, b, rb, 0.2)
}

func TestSeparateRGBWithExplicitStartSkipsGriddy(t *testing.T) {
	e := New(twoCoatConfig)
	rng := rand.New(rand.NewSource(7))
	levels := e.SeparateRGB(0.5, 0.1, 0.1, []float32{0.9, 0.1}, rng)
	assert.Len(t, levels, 2)
}

func TestSeparateRGBWithNilStartRunsGriddyThenStochastic(t *testing.T) {
	e := New(twoCoatConfig)
	rng := rand.New(rand.NewSource(7))
	levels := e.SeparateRGB(0.5, 0.1, 0.1, nil, rng)
	assert.Len(t, levels, 2)
}

func TestSeparateSpectrumReturnsCorrectLength(t *testing.T) {
	e := New(twoCoatConfig)
	sp := e.CoatsToSpectrum([]float32{0.4, 0.6})
	rng := rand.New(rand.NewSource(3))
	levels := e.SeparateSpectrum(sp, nil, rng)
	assert.Len(t, levels, 2)
}

func TestXYZToCoatsReturnsCorrectLength(t *testing.T) {
	e := New(twoCoatConfig)
	x, y, z := e.CoatsToXYZ([]float32{0.2, 0.8})
	levels := e.XYZToCoats(x, y, z)
	assert.Len(t, levels, 2)
}

func TestRGBToCoatsIsSafeForConcurrentCallers(t *testing.T) {
	e := New(twoCoatConfig)
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		r := float32(i%10) / 10
		go func(r float32) {
			defer wg.Done()
			levels := e.RGBToCoats(r, r, r)
			assert.Len(t, levels, 2)
		}(r)
	}
	wg.Wait()
}

// XYZToRGBForTest re-derives the fixed matrix locally so the test does
// not depend on exporting an extra symbol purely for its own benefit.
func XYZToRGBForTest(x, y, z float32) (r, g, b float32) {
	r = x*3.134275 + y*-1.617276 + z*-0.490724
	g = x*-0.978796 + y*1.916162 + z*0.033453
	b = x*0.071977 + y*-0.228985 + z*1.405718
	return r, g, b
}
