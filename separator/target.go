// Package separator implements the inverse solver: recovering per-coat
// levels that reproduce a target device RGB or spectrum, via a coarse
// grid search followed by stochastic refinement.
package separator

import "github.com/hodefoting/luz/spectrum"

// Target is what a separation attempt is scored against. It is a
// two-case variant (an RGB triple or a full spectrum) rather than two
// near-duplicate search routines, per spec.md §9.
type Target struct {
	rgb        [3]float32
	spec       spectrum.Spectrum
	isSpectrum bool
}

// RGBTarget builds a device-RGB separation target.
func RGBTarget(r, g, b float32) Target {
	return Target{rgb: [3]float32{r, g, b}}
}

// SpectrumTarget builds a full-spectrum separation target.
func SpectrumTarget(s spectrum.Spectrum) Target {
	return Target{spec: s, isSpectrum: true}
}

// Evaluator bundles what Griddy/Stochastic need from an engine's
// forward model, without importing the engine package directly — that
// would create an import cycle, since the engine is what calls into
// separator.
type Evaluator struct {
	ToSpectrum    func(levels []float32) spectrum.Spectrum
	ToRGB         func(levels []float32) [3]float32
	Coats         int
	CoverageLimit float32
}

// rgbChannelWeight applies spec.md §4.5/§8's (1, 1.3, 1) channel weights
// to a squared RGB distance, weighting green higher than red/blue.
var rgbChannelWeight = [3]float32{1, 1.3, 1}

// Distance scores levels against t: squared-difference sum over 31
// spectral bands, or a (1, 1.3, 1) channel-weighted squared-difference
// sum over the 3 RGB channels.
func Distance(ev Evaluator, t Target, levels []float32) float32 {
	if t.isSpectrum {
		s := ev.ToSpectrum(levels)
		var sum float32
		for i := range s {
			d := t.spec[i] - s[i]
			sum += d * d
		}
		return sum
	}
	rgb := ev.ToRGB(levels)
	var sum float32
	for i := 0; i < 3; i++ {
		d := t.rgb[i] - rgb[i]
		sum += rgbChannelWeight[i] * d * d
	}
	return sum
}
