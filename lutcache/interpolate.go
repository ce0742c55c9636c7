package lutcache

import "github.com/chewxy/math32"

// Indice maps a device channel value in [0,1] to its lower grid index
// and the fractional delta to the next index, reproducing lut_indice:
// Dim-1 steps so both 0.0 and 1.0 land on real grid lines.
func Indice(val float32) (int, float32) {
	v := int(math32.Floor(val * (Dim - 1)))
	if v < 0 {
		v = 0
	}
	if v >= Dim-1 {
		v = Dim - 2
	}
	delta := val*(Dim-1) - float32(v)
	return v, delta
}

func lerp(a, b []float32, delta float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i]*(1-delta) + b[i]*delta
	}
	return out
}

// Lookup resolves an RGB triple to a coat-level vector via trilinear
// interpolation over the 8 surrounding cells, calling ensureFilled for
// each corner and quantize on the interpolated result (spec.md §4.6
// step 4), matching luz_rgb_to_coats corner numbering exactly.
func Lookup(r, g, b float32, ensureFilled func(ri, gi, bi int) []float32, quantize func([]float32) []float32) []float32 {
	ri, rd := Indice(r)
	gi, gd := Indice(g)
	bi, bd := Indice(b)

	c000 := ensureFilled(ri+0, gi+0, bi+0)
	c100 := ensureFilled(ri+1, gi+0, bi+0)
	c101 := ensureFilled(ri+1, gi+0, bi+1)
	c001 := ensureFilled(ri+0, gi+0, bi+1)
	c010 := ensureFilled(ri+0, gi+1, bi+0)
	c110 := ensureFilled(ri+1, gi+1, bi+0)
	c111 := ensureFilled(ri+1, gi+1, bi+1)
	c011 := ensureFilled(ri+0, gi+1, bi+1)

	t1 := lerp(c000, c100, rd)
	t2 := lerp(c001, c101, rd)
	t3 := lerp(c010, c110, rd)
	t4 := lerp(c011, c111, rd)
	t1 = lerp(t1, t3, gd)
	t2 = lerp(t2, t4, gd)
	result := lerp(t1, t2, bd)

	return quantize(result)
}
