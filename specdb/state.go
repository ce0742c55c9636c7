package specdb

import (
	"github.com/hodefoting/luz/coat"
	"github.com/hodefoting/luz/spectrum"
)

// MaxCoats is the maximum number of stackable coat layers (spec.md §3).
const MaxCoats = 16

// DefaultCoverageLimit is the coverage limit a freshly reset/parsed
// State carries when the config never sets "coatlimit" — the original
// C implementation initializes this to LUZ_MAX_COATS (16), which is
// effectively "unconstrained" since at most 16 coats of at most 1.0
// coverage each can ever be requested. spec.md's prose ("default =
// number of coats") describes the same practical effect; this
// implementation follows the original's literal constant. See
// DESIGN.md. An engine always parses Builtin first, and Builtin sets
// coatlimit = 3, so this value only remains on a State parsed without
// Builtin; an engine whose own config omits coatlimit runs with 3.
const DefaultCoverageLimit = float32(MaxCoats)

// MinCoverageLimit is the floor the coverage limit is clamped to
// (spec.md §7/§8 boundary behavior).
const MinCoverageLimit = 0.2

// DiffusionMin and DiffusionMax bound the two stochastic diffusion
// radii (spec.md §3, §8 boundary behavior).
const (
	DiffusionMin = 0.03
	DiffusionMax = 100.0
)

// DefaultIterations is the stochastic refinement iteration count used
// when a config never sets "iterations".
const DefaultIterations = 42

// State is the complete parsed configuration of an engine: the
// dedicated spectra slots, the general spectrum table, the declared
// coat stack, the coverage limit and the stochastic tuning knobs.
//
// State is built by [ParseInto] and is otherwise a plain value type; it
// carries no synchronization of its own; a [github.com/hodefoting/luz.Engine]
// owns one State for the engine's lifetime and treats it as read-only
// after construction, per spec.md §5.
type State struct {
	DB *DB

	Illuminant  spectrum.Spectrum
	RevYScale   float32
	Substrate   spectrum.Spectrum
	ObserverX   spectrum.Spectrum
	ObserverY   spectrum.Spectrum
	ObserverZ   spectrum.Spectrum

	Coats     [MaxCoats]coat.Coat
	CoatCount int

	CoverageLimit float32
	DebugWidth    int
	Iterations    int
	Diffusion0    float32
	Diffusion1    float32
}

// NewState returns a State with the spec-mandated defaults: every coat
// slot at Scale=1/TRCGamma=1/Levels=0, CoverageLimit=DefaultCoverageLimit,
// Iterations=DefaultIterations, an empty general spectrum table.
func NewState() *State {
	st := &State{
		DB:            NewDB(),
		CoverageLimit: DefaultCoverageLimit,
		Iterations:    DefaultIterations,
	}
	for i := range st.Coats {
		st.Coats[i] = coat.New()
	}
	return st
}

// dedicated spectrum slot names.
const (
	NameIlluminant = "illuminant"
	NameSubstrate  = "substrate"
	NameObserverX  = "observer_x"
	NameObserverY  = "observer_y"
	NameObserverZ  = "observer_z"
)

// GetSpectrum resolves name against the five dedicated slots first,
// then the general table, exactly as luz_get_spectrum does.
func (st *State) GetSpectrum(name string) (spectrum.Spectrum, bool) {
	switch name {
	case NameIlluminant:
		return st.Illuminant, true
	case NameSubstrate:
		return st.Substrate, true
	case NameObserverX:
		return st.ObserverX, true
	case NameObserverY:
		return st.ObserverY, true
	case NameObserverZ:
		return st.ObserverZ, true
	}
	return st.DB.Get(name)
}

// SetSpectrum assigns name, updating a dedicated slot directly or
// inserting/overwriting in the general table. Setting "illuminant"
// recomputes RevYScale, matching luz_set_spectrum.
func (st *State) SetSpectrum(name string, s spectrum.Spectrum) {
	switch name {
	case NameIlluminant:
		st.Illuminant = s
		st.RevYScale = spectrum.IlluminantRevYScale(s, st.ObserverY)
		return
	case NameSubstrate:
		st.Substrate = s
		return
	case NameObserverX:
		st.ObserverX = s
		return
	case NameObserverY:
		st.ObserverY = s
		if st.Illuminant != (spectrum.Spectrum{}) {
			st.RevYScale = spectrum.IlluminantRevYScale(st.Illuminant, s)
		}
		return
	case NameObserverZ:
		st.ObserverZ = s
		return
	}
	st.DB.Set(name, s)
}

// ClampTuning clamps CoverageLimit and the two diffusion radii to their
// documented bounds (spec.md §8 boundary behaviors). Called after
// parsing completes, and again by the engine's SetCoverageLimit.
func (st *State) ClampTuning() {
	if st.CoverageLimit < MinCoverageLimit {
		st.CoverageLimit = MinCoverageLimit
	}
	if st.Diffusion0 < DiffusionMin {
		st.Diffusion0 = DiffusionMin
	} else if st.Diffusion0 > DiffusionMax {
		st.Diffusion0 = DiffusionMax
	}
	if st.Diffusion1 < DiffusionMin {
		st.Diffusion1 = DiffusionMin
	} else if st.Diffusion1 > DiffusionMax {
		st.Diffusion1 = DiffusionMax
	}
}
