// Package luz implements a spectral color-mixing engine: converting
// between device RGB and per-coat amounts for up to 16 semi-transparent
// colorant layers via full-spectrum reflectance modeling.
//
// An Engine is built from a line-based configuration that declares the
// illuminant, substrate, standard observer, and the coat stack; once
// built it offers the forward direction (coat levels to RGB/XYZ/
// spectrum) and the inverse direction (RGB/XYZ/spectrum to coat levels,
// backed by a lazily-filled 16x16x16 lookup table).
package luz
