package luz

import (
	"fmt"
	"math/rand"

	"github.com/hodefoting/luz/coat"
	"github.com/hodefoting/luz/internal/validate"
	"github.com/hodefoting/luz/lutcache"
	"github.com/hodefoting/luz/separator"
	"github.com/hodefoting/luz/specdb"
	"github.com/hodefoting/luz/spectrum"
)

// Engine is a fully configured color-mixing engine: the parsed
// configuration state plus its lazily-filled LUT cache. Read-only
// methods are safe for concurrent callers once New (or SetConfig) has
// returned (spec.md §5).
type Engine struct {
	state  *specdb.State
	lut    *lutcache.Cache
	source string
	seed   int64
}

// New builds an engine from config: the built-in bootstrap config
// (specdb.Builtin) is parsed first, then config (spec.md §6).
func New(config string) *Engine {
	e := &Engine{seed: 1}
	e.reset(config)
	return e
}

// SetConfig reparses config into the engine. If config is identical to
// the string last parsed, this is a cheap no-op and existing LUT fills
// are preserved; otherwise all state including the LUT cache is
// discarded and rebuilt (spec.md §3 lifecycle).
func (e *Engine) SetConfig(config string) {
	if config == e.source {
		return
	}
	e.reset(config)
}

func (e *Engine) reset(config string) {
	st := specdb.NewState()
	specdb.ParseInto(st, specdb.Builtin)
	specdb.ParseInto(st, config)
	st.ClampTuning()

	e.state = st
	e.lut = lutcache.New()
	e.source = config
}

// Close drops the engine's state. Engine holds no OS resources; Close
// exists for parity with the original's explicit new/destroy lifecycle.
func (e *Engine) Close() {
	e.state = nil
	e.lut = nil
}

// CoatsToSpectrum applies coats 1..GetCoatCount() in order onto the
// substrate, then multiplies band-wise by the illuminant (spec.md
// §4.3). Coats are applied non-commutatively; levels beyond the
// declared coat count are ignored.
func (e *Engine) CoatsToSpectrum(levels []float32) spectrum.Spectrum {
	s := e.state.Substrate
	for i := 0; i < e.state.CoatCount && i < len(levels); i++ {
		s = coat.Compose(s, e.state.Coats[i], levels[i])
	}
	return spectrum.Scale(s, e.state.Illuminant)
}

// CoatsToXYZ is CoatsToSpectrum followed by spectrum.ToXYZ.
func (e *Engine) CoatsToXYZ(levels []float32) (x, y, z float32) {
	return e.SpectrumToXYZ(e.CoatsToSpectrum(levels))
}

// CoatsToRGB is CoatsToXYZ followed by spectrum.XYZToRGB.
func (e *Engine) CoatsToRGB(levels []float32) (r, g, b float32) {
	x, y, z := e.CoatsToXYZ(levels)
	return spectrum.XYZToRGB(x, y, z)
}

// SpectrumToXYZ converts a caller-supplied spectrum directly, without
// multiplying it by the illuminant (the caller is responsible for that,
// unlike CoatsToSpectrum which applies it for the coat-mixing path).
// The result is still normalized by the illuminant's reverse-Y scale.
func (e *Engine) SpectrumToXYZ(s spectrum.Spectrum) (x, y, z float32) {
	return spectrum.ToXYZ(s, e.state.ObserverX, e.state.ObserverY, e.state.ObserverZ, e.state.RevYScale)
}

// SpectrumToRGB is SpectrumToXYZ followed by spectrum.XYZToRGB.
func (e *Engine) SpectrumToRGB(s spectrum.Spectrum) (r, g, b float32) {
	x, y, z := e.SpectrumToXYZ(s)
	return spectrum.XYZToRGB(x, y, z)
}

// RGBToSpectrum is the weighted sum of the red/green/blue primaries
// (spec.md §4.2 form 1).
func (e *Engine) RGBToSpectrum(r, g, b float32) spectrum.Spectrum {
	return specdb.RGBToSpectrum(e.state, r, g, b)
}

// ParseSpectrum parses one of the three spectrum literal forms
// (spec.md §4.2).
func (e *Engine) ParseSpectrum(literal string) spectrum.Spectrum {
	return specdb.ParseSpectrumLiteral(e.state, literal)
}

// GetSpectrum resolves name against the dedicated slots then the
// general table, returning the zero spectrum if unknown (spec.md §7).
func (e *Engine) GetSpectrum(name string) spectrum.Spectrum {
	s, _ := e.state.GetSpectrum(name)
	return s
}

// LookupSpectrum is GetSpectrum's diagnostic counterpart: it reports
// ErrUnknownSpectrum instead of silently returning the zero spectrum.
// Never called on the hot path (spec.md §7); for callers who want to
// distinguish "deliberately black" from "name never set".
func (e *Engine) LookupSpectrum(name string) (spectrum.Spectrum, error) {
	s, ok := e.state.GetSpectrum(name)
	if !ok {
		return spectrum.Spectrum{}, fmt.Errorf("%w: %q", ErrUnknownSpectrum, name)
	}
	return s, nil
}

// CoatAt is a diagnostic accessor for a single coat's tuning, reporting
// ErrCoatIndexOutOfRange instead of panicking on an out-of-range index.
func (e *Engine) CoatAt(index int) (coat.Coat, error) {
	if index < 0 || index >= len(e.state.Coats) {
		return coat.Coat{}, fmt.Errorf("%w: %d", ErrCoatIndexOutOfRange, index)
	}
	return e.state.Coats[index], nil
}

// SetSpectrum assigns name, overwriting a dedicated slot or inserting
// into the general table.
func (e *Engine) SetSpectrum(name string, s spectrum.Spectrum) {
	e.state.SetSpectrum(name, s)
}

// GetCoatCount returns the declared number of stackable coats.
func (e *Engine) GetCoatCount() int {
	return e.state.CoatCount
}

// SetCoatCount lets a caller proof with a reduced stack without
// reconfiguring (spec.md §6). It does not invalidate the LUT cache:
// cells already filled under a different coat count keep their
// original-length level vectors, exactly as the original implementation
// behaves.
func (e *Engine) SetCoatCount(n int) error {
	if n < 0 || n > specdb.MaxCoats {
		return &CoatCountError{Requested: n, Max: specdb.MaxCoats}
	}
	e.state.CoatCount = n
	return nil
}

// GetCoverageLimit returns the current coverage limit.
func (e *Engine) GetCoverageLimit() float32 {
	return e.state.CoverageLimit
}

// SetCoverageLimit sets the coverage limit, clamped to its documented
// floor (spec.md §8).
func (e *Engine) SetCoverageLimit(limit float32) {
	e.state.CoverageLimit = limit
	e.state.ClampTuning()
}

// DiagnoseTuning validates the engine's current tuning knobs and
// reports any that are out of bounds. Since ClampTuning always runs
// after parsing, this is normally nil; it exists as an optional
// diagnostic surface (spec.md §7), not a hot-path check.
func (e *Engine) DiagnoseTuning() error {
	return validate.Check(validate.Tuning{
		CoverageLimit: e.state.CoverageLimit,
		Diffusion0:    e.state.Diffusion0,
		Diffusion1:    e.state.Diffusion1,
		Iterations:    e.state.Iterations,
	})
}

func (e *Engine) evaluator() separator.Evaluator {
	return separator.Evaluator{
		Coats:         e.state.CoatCount,
		CoverageLimit: e.state.CoverageLimit,
		ToSpectrum:    e.CoatsToSpectrum,
		ToRGB: func(levels []float32) [3]float32 {
			r, g, b := e.CoatsToRGB(levels)
			return [3]float32{r, g, b}
		},
	}
}

// RGBToCoats resolves rgb to coat levels via the 16x16x16 LUT cache:
// trilinear interpolation over up to 8 lazily-separated corners,
// followed by per-coat level quantization (spec.md §4.6).
func (e *Engine) RGBToCoats(r, g, b float32) []float32 {
	coats := e.state.CoatCount
	if coats == 0 {
		return nil
	}

	ensureFilled := func(ri, gi, bi int) []float32 {
		return e.lut.EnsureFilled(ri, gi, bi, func() []float32 {
			trgb := [3]float32{
				float32(ri) / lutcache.Dim,
				float32(gi) / lutcache.Dim,
				float32(bi) / lutcache.Dim,
			}
			return e.fillCell(trgb, ri, gi, bi)
		})
	}

	quantize := func(levels []float32) []float32 {
		for i := range levels {
			if i < coats {
				levels[i] = e.state.Coats[i].Quantize(levels[i])
			}
		}
		return levels
	}

	levels := lutcache.Lookup(r, g, b, ensureFilled, quantize)
	if len(levels) > coats {
		levels = levels[:coats]
	}
	return levels
}

// XYZToCoats converts xyz to device RGB, then resolves via RGBToCoats.
func (e *Engine) XYZToCoats(x, y, z float32) []float32 {
	r, g, b := spectrum.XYZToRGB(x, y, z)
	return e.RGBToCoats(r, g, b)
}

func (e *Engine) fillCell(rgb [3]float32, ri, gi, bi int) []float32 {
	ev := e.evaluator()
	target := separator.RGBTarget(rgb[0], rgb[1], rgb[2])

	start, _ := separator.Griddy(ev, target, ev.CoverageLimit)

	cellIdx := lutcache.Index(ri, gi, bi)
	rng := rand.New(rand.NewSource(e.seed + int64(cellIdx)))

	levels, _ := separator.Stochastic(ev, target, start, e.state.Iterations, e.state.Diffusion0, e.state.Diffusion1, rng)
	return levels
}

// SeparateRGB runs a one-off griddy+stochastic search against rgb
// without touching the LUT cache. If start is non-nil it is used as
// the stochastic phase's starting point (skipping the grid search);
// otherwise Griddy supplies the starting point. Useful for tests (or
// callers) wanting rgb_to_coats(coats_to_rgb(levels)) without forcing
// every sample through the 16^3 grid (spec.md §4.5 supplement).
func (e *Engine) SeparateRGB(r, g, b float32, start []float32, rng *rand.Rand) []float32 {
	return e.separate(separator.RGBTarget(r, g, b), start, rng)
}

// SeparateSpectrum is SeparateRGB's spectrum-target counterpart.
func (e *Engine) SeparateSpectrum(s spectrum.Spectrum, start []float32, rng *rand.Rand) []float32 {
	return e.separate(separator.SpectrumTarget(s), start, rng)
}

func (e *Engine) separate(target separator.Target, start []float32, rng *rand.Rand) []float32 {
	ev := e.evaluator()

	var levels []float32
	if start != nil {
		levels = append([]float32(nil), start...)
	} else {
		levels, _ = separator.Griddy(ev, target, ev.CoverageLimit)
	}

	levels, _ = separator.Stochastic(ev, target, levels, e.state.Iterations, e.state.Diffusion0, e.state.Diffusion1, rng)
	return levels
}
