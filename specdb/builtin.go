package specdb

// Builtin is the bootstrap configuration parsed into every new engine
// before any user-supplied config (spec.md §6): the CIE 1931 standard
// observer color matching functions resampled onto the native 31-band
// grid, a D65-like illuminant, a near-flat substrate, and synthetic RGB
// primaries. The observer/illuminant figures are the public CIE 1931
// 2-degree tables at 10nm steps; the substrate and primaries are
// reasonable synthetic placeholders (see DESIGN.md) since the original
// proprietary bootstrap config was never part of the distillation.
const Builtin = `
# CIE 1931 standard observer, 2-degree, 390-690nm at 10nm steps.
observer_x = 390 10 1 0.0042 0.0143 0.0435 0.1344 0.2839 0.3483 0.3362 0.2908 0.1954 0.0956 0.0320 0.0049 0.0093 0.0633 0.1655 0.2904 0.4334 0.5945 0.7621 0.9163 1.0263 1.0622 1.0026 0.8544 0.6424 0.4479 0.2835 0.1649 0.0874 0.0468 0.0227
observer_y = 390 10 1 0.0001 0.0004 0.0012 0.0040 0.0116 0.0230 0.0380 0.0600 0.0910 0.1390 0.2080 0.3230 0.5030 0.7100 0.8620 0.9540 0.9950 0.9950 0.9520 0.8700 0.7570 0.6310 0.5030 0.3810 0.2650 0.1750 0.1070 0.0610 0.0320 0.0170 0.0082
observer_z = 390 10 1 0.0201 0.0679 0.2074 0.6456 1.3856 1.7471 1.7721 1.6692 1.2876 0.8130 0.4652 0.2720 0.1582 0.0782 0.0422 0.0203 0.0087 0.0039 0.0021 0.0017 0.0011 0.0008 0.0003 0.0002 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000

# D65-like relative spectral power distribution, same grid.
illuminant = 390 10 1 54.65 82.75 91.49 93.43 86.68 104.87 117.01 117.81 114.86 115.92 108.81 109.35 107.80 104.79 107.69 104.41 104.05 100.00 96.33 95.79 88.69 90.01 89.60 87.70 83.29 83.70 80.03 80.21 82.28 78.28 69.72

# near-flat backing substrate.
substrate = 390 310 1 0.92

# synthetic device-RGB primaries used by the "rgb r g b" spectrum literal.
red = 390 30 1 0.04 0.05 0.06 0.07 0.08 0.10 0.25 0.55 0.80 0.88 0.90
green = 390 30 1 0.03 0.06 0.15 0.45 0.75 0.85 0.55 0.20 0.08 0.04 0.03
blue = 390 30 1 0.85 0.80 0.55 0.25 0.10 0.05 0.03 0.02 0.02 0.02 0.02

coatlimit = 3
iterations = 42
diffusion = 1.0
`
