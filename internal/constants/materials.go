package constants

import (
	"fmt"
	"sort"

	"github.com/facette/natsort"
)

var workFunctions = map[string]float64{
	"Cesium":    2.1,
	"Potassium": 2.3,
	"Sodium":    2.28,
	"Lithium":   2.9,
	"Zinc":      4.3,
	"Copper":    4.7,
	"Silver":    4.26,
	"Platinum":  6.35,
}

var atomicNumbers = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6,
	"N": 7, "O": 8, "F": 9, "Ne": 10, "Na": 11, "Mg": 12,
	"Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Fe": 26, "Cu": 29, "Zn": 30, "Ag": 47,
	"I": 53, "W": 74, "Pb": 82, "U": 92,
}

// WorkFunction returns the work function in eV of a named material.
func WorkFunction(material string) (float64, error) {
	wf, ok := workFunctions[material]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
	return wf, nil
}

// AtomicNumber returns Z for an element symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := atomicNumbers[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, symbol)
	}
	return z, nil
}

// Materials lists the materials with a known work function.
func Materials() []string {
	return sortedKeys(workFunctions)
}

// Elements lists the element symbols with a known atomic number, ordered by Z.
func Elements() []string {
	names := sortedKeys(atomicNumbers)
	sort.SliceStable(names, func(i, j int) bool {
		return atomicNumbers[names[i]] < atomicNumbers[names[j]]
	})
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})
	return names
}
