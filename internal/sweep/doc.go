// Package sweep generates plot data by evaluating calculations over a
// range of sample points.
//
// Spacing helpers produce the independent variable:
//
//   - [Linspace]: evenly spaced, both endpoints included
//   - [Logspace]: geometrically spaced, both endpoints included
//
// [Generate] maps a calculation over the points and [Series] carries two
// aligned sequences ready for a renderer. The named generators
// ([ComptonAngles], [PairEnergies], [ThomsonDistribution], ...) build the
// curves each experiment charts. Several of them are schematic shapes, not
// measured cross-sections.
//
// Every call allocates fresh slices; nothing is cached.
package sweep
