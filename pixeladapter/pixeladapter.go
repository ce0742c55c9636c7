// Package pixeladapter wraps an [luz.Engine] for the three pixel-filter
// modes a host image-processing pipeline drives it through (spec.md
// §6): proof (coats -> RGBA), separate (RGB -> coats, packed into RGBA),
// and separate-proof (RGB -> coats -> RGB, optionally isolating one
// coat). Each mode processes a flat []float32 buffer in fixed-size
// chunks, mirroring luz-script.c's process() sample loop.
package pixeladapter

import "github.com/hodefoting/luz"

// Proof evaluates coats-to-RGB across in, a buffer of fixed-width coat
// chunks, and returns a 4-float RGBA buffer (alpha always 1). Chunk
// width is the engine's coat count, or 4 when that count exceeds 3 —
// matching luz-script.c's GEGL_LUZ_PROOF mode, which only ever reads 4
// input floats once a stack has more than 3 coats.
func Proof(e *luz.Engine, in []float32) []float32 {
	coatCount := e.GetCoatCount()
	width := coatCount
	if width > 4 {
		width = 4
	}
	if width == 0 {
		width = 1
	}

	samples := len(in) / width
	out := make([]float32, samples*4)
	levels := make([]float32, width)

	for s := 0; s < samples; s++ {
		copy(levels, in[s*width:(s+1)*width])
		r, g, b := e.CoatsToRGB(levels)
		out[s*4+0] = r
		out[s*4+1] = g
		out[s*4+2] = b
		out[s*4+3] = 1.0
	}
	return out
}

// Separate resolves each RGBA sample of in to coat levels and packs up
// to 4 of them into the output RGBA buffer, zero-padding channels the
// engine's coat count doesn't reach (spec.md §6). If coatNo is nonzero
// (1-based), the output is instead a grayscale replication of that one
// coat's level across R/G/B with A=1; coatNo is clamped to
// [1, coat_count].
func Separate(e *luz.Engine, in []float32, coatNo int) []float32 {
	const stride = 4
	samples := len(in) / stride
	out := make([]float32, samples*stride)
	coatCount := e.GetCoatCount()

	if coatNo == 0 {
		for s := 0; s < samples; s++ {
			coats := e.RGBToCoats(in[s*stride+0], in[s*stride+1], in[s*stride+2])
			o := out[s*stride : s*stride+stride]
			for i := 0; i < 4 && i < coatCount; i++ {
				o[i] = coats[i]
			}
			if coatCount < 4 {
				o[3] = 1.0
			}
			if coatCount < 3 {
				o[2] = 0
			}
			if coatCount < 2 {
				o[1] = 0
			}
		}
		return out
	}

	clamped := coatNo - 1
	if clamped > coatCount-1 {
		clamped = coatCount - 1
	}
	if clamped < 0 {
		clamped = 0
	}

	for s := 0; s < samples; s++ {
		coats := e.RGBToCoats(in[s*stride+0], in[s*stride+1], in[s*stride+2])
		var v float32
		if clamped < len(coats) {
			v = coats[clamped]
		}
		o := out[s*stride : s*stride+stride]
		o[0], o[1], o[2], o[3] = v, v, v, 1.0
	}
	return out
}

// SeparateProof resolves each RGBA sample of in to coat levels,
// optionally zeroing every coat but coatNo-1, forward-evaluates the
// result and returns a 3-float RGB buffer (spec.md §6).
func SeparateProof(e *luz.Engine, in []float32, coatNo int) []float32 {
	const inStride = 4
	const outStride = 3
	samples := len(in) / inStride
	out := make([]float32, samples*outStride)
	coatCount := e.GetCoatCount()

	for s := 0; s < samples; s++ {
		coats := e.RGBToCoats(in[s*inStride+0], in[s*inStride+1], in[s*inStride+2])
		if coatNo != 0 {
			for i := 0; i < coatCount && i < len(coats); i++ {
				if i != coatNo-1 {
					coats[i] = 0
				}
			}
		}
		r, g, b := e.CoatsToRGB(coats)
		o := out[s*outStride : s*outStride+outStride]
		o[0], o[1], o[2] = r, g, b
	}
	return out
}
