package specdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/hodefoting/luz/spectrum"
)

// ParseInto parses newline-separated config text into st, mutating it in
// place. A line without '=' is a comment and is ignored; malformed
// values parse best-effort rather than erroring, since configs are
// author-edited and comments/typos are indistinguishable from each
// other (spec.md §7 Parse-skip). ParseInto never returns an error.
func ParseInto(st *State, cfg string) {
	for _, line := range strings.Split(cfg, "\n") {
		parseLine(st, line)
	}
}

func parseLine(st *State, line string) {
	if !strings.Contains(line, "=") {
		return
	}
	line = strings.TrimLeft(line, " ")
	eq := strings.Index(line, "=")
	key := strings.TrimSpace(line[:eq])
	value := strings.TrimSpace(line[eq+1:])

	switch key {
	case "coatlimit":
		st.CoverageLimit = parseFloatTolerant(value)
		if st.CoverageLimit < MinCoverageLimit {
			st.CoverageLimit = MinCoverageLimit
		}
		return
	case "debugwidth":
		st.DebugWidth = int(parseFloatTolerant(value))
		return
	case "iterations":
		st.Iterations = parseIntTolerant(value)
		return
	case "diffusion":
		d := parseFloatTolerant(value)
		st.Diffusion0 = d
		st.Diffusion1 = d
		return
	}

	s := ParseSpectrumLiteral(st, value)
	st.SetSpectrum(key, s)

	for n := 1; n <= MaxCoats; n++ {
		c := &st.Coats[n-1]
		switch key {
		case fmt.Sprintf("coat%d", n):
			c.OnWhite = s
			c.OnBlack = spectrum.Spectrum{} // defaults to black: pure transparent "coat"
			if n > st.CoatCount {
				st.CoatCount = n
			}
			c.Recompute()
			return
		case fmt.Sprintf("coat%d.black", n):
			c.OnBlack = s
			if n > st.CoatCount {
				st.CoatCount = n
			}
			c.Recompute()
			return
		case fmt.Sprintf("coat%d.levels", n):
			c.Levels = int(parseFloatTolerant(value))
			return
		case fmt.Sprintf("coat%d.gamma", n):
			c.TRCGamma = parseFloatTolerant(value)
			return
		case fmt.Sprintf("coat%d.scale", n):
			c.Scale = parseFloatTolerant(value)
			return
		case fmt.Sprintf("coat%d.opaqueness", n):
			o := parseFloatTolerant(value)
			for i := 0; i < spectrum.Bands; i++ {
				c.OnBlack[i] = c.OnWhite[i] * o
			}
			c.Recompute()
			return
		}
	}
}

// ParseSpectrumLiteral parses one of the three spectrum literal forms
// (spec.md §4.2): "rgb R G B", a bare DB name, or a numeric resample
// list "nm_start nm_gap nm_scale v0 v1 ...". Unrecognized/malformed
// input yields the zero spectrum rather than an error.
func ParseSpectrumLiteral(st *State, literal string) spectrum.Spectrum {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return spectrum.Spectrum{}
	}
	fields := strings.Fields(literal)
	key := fields[0]

	var s spectrum.Spectrum
	if key == "rgb" {
		var r, g, b float32
		if len(fields) > 1 {
			r = parseFloatToken(fields[1])
		}
		if len(fields) > 2 {
			g = parseFloatToken(fields[2])
		}
		if len(fields) > 3 {
			b = parseFloatToken(fields[3])
		}
		s = RGBToSpectrum(st, r, g, b)
	}

	// A literal that names an already-known spectrum (including a name
	// that happens to be "rgb") always wins over either computed form.
	if tmp, ok := st.GetSpectrum(key); ok {
		return tmp
	}

	// Numeric resample list: only takes effect (and only then overwrites
	// s) once more than 3 tokens parse as numbers outright — this keeps
	// "rgb 1 0 0" from being reinterpreted as a broken numeric list (its
	// first token "rgb" fails to parse, so the loop below stops at zero
	// values and s keeps the already-computed RGB result).
	values := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			break
		}
		values = append(values, float32(v))
	}
	if len(values) > 3 {
		s = resampleNumericList(values)
	}
	return s
}

// resampleNumericList implements the piecewise-constant ("step
// function") resampler documented in spec.md §4.2/§9: for sample k at
// wavelength nm_start+k*nm_gap, bands from that wavelength's index
// upward are filled with v_k*nm_scale; the wavelength one step past the
// last sample resets subsequent bands to 0.
func resampleNumericList(values []float32) spectrum.Spectrum {
	var s spectrum.Spectrum
	nmStart, nmGap, nmScale := values[0], values[1], values[2]

	nm := nmStart
	for i := 3; i < len(values); i++ {
		j := int(math32.Floor((nm - spectrum.Start) / spectrum.Gap))
		if j >= 0 && j < spectrum.Bands {
			fillFrom(&s, j, values[i]*nmScale)
		}
		nm += nmGap
	}
	if j := int(math32.Floor((nm - spectrum.Start) / spectrum.Gap)); j >= 0 && j < spectrum.Bands {
		fillFrom(&s, j, 0)
	}
	return s
}

func fillFrom(s *spectrum.Spectrum, from int, v float32) {
	for k := from; k < spectrum.Bands; k++ {
		s[k] = v
	}
}

// RGBToSpectrum converts device RGB to a spectrum via a weighted sum of
// the built-in red/green/blue primaries: bands[i] = r^2.2*red[i] +
// g^2.2*green[i] + b^2.2*blue[i] (spec.md §4.2 form 1). Missing
// primaries (an unconfigured engine) contribute zero.
func RGBToSpectrum(st *State, r, g, b float32) spectrum.Spectrum {
	red, _ := st.GetSpectrum("red")
	green, _ := st.GetSpectrum("green")
	blue, _ := st.GetSpectrum("blue")

	rw, gw, bw := math32.Pow(r, 2.2), math32.Pow(g, 2.2), math32.Pow(b, 2.2)

	var s spectrum.Spectrum
	for i := 0; i < spectrum.Bands; i++ {
		s[i] = red[i]*rw + green[i]*gw + blue[i]*bw
	}
	return s
}

func parseFloatToken(tok string) float32 {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

// parseFloatTolerant parses the leading whitespace-delimited token of
// value as a float, defaulting to 0 on any parse failure (mirroring
// strtod's "0 on no valid prefix" behavior for malformed knob values).
func parseFloatTolerant(value string) float32 {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0
	}
	return parseFloatToken(fields[0])
}

func parseIntTolerant(value string) int {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return v
}
