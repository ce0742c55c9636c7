package spectrum

// IlluminantRevYScale returns 1 / Integrate(illuminant, observerY).
//
// Recomputed by the owner (see [github.com/hodefoting/luz.Engine.SetSpectrum])
// whenever the illuminant spectrum changes.
func IlluminantRevYScale(illuminant, observerY Spectrum) float32 {
	return 1.0 / Integrate(illuminant, observerY)
}

// ToXYZ converts a spectrum to CIE XYZ tristimulus values given the
// three standard-observer curves and the illuminant's reverse-Y scale
// (see IlluminantRevYScale).
func ToXYZ(s, observerX, observerY, observerZ Spectrum, revYScale float32) (x, y, z float32) {
	x = Integrate(s, observerX) * revYScale
	y = Integrate(s, observerY) * revYScale
	z = Integrate(s, observerZ) * revYScale
	return x, y, z
}

// XYZToRGB applies the fixed XYZ to linear device-RGB matrix. No
// clamping is performed; callers clamp as needed for display.
func XYZToRGB(x, y, z float32) (r, g, b float32) {
	r = x*3.134275 + y*-1.617276 + z*-0.490724
	g = x*-0.978796 + y*1.916162 + z*0.033453
	b = x*0.071977 + y*-0.228985 + z*1.405718
	return r, g, b
}
