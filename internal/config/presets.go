package config

import (
	"sort"

	"github.com/facette/natsort"
)

func preset(experiment string, fn func(c *Config)) *Config {
	c := DefaultConfig()
	c.Experiment = experiment
	fn(c)
	return c
}

var Presets = map[string]map[string]*Config{
	"photoelectric": {
		"cesium-uv": preset("photoelectric", func(c *Config) {
			c.Photoelectric.Material, c.Photoelectric.PhotonEV = "Cesium", 6.0
		}),
		"copper-visible": preset("photoelectric", func(c *Config) {
			c.Photoelectric.Material, c.Photoelectric.PhotonEV = "Copper", 2.5
		}),
		"platinum-edge": preset("photoelectric", func(c *Config) {
			c.Photoelectric.Material, c.Photoelectric.PhotonEV = "Platinum", 6.35
		}),
	},
	"compton": {
		"diagnostic": preset("compton", func(c *Config) {
			c.Compton.IncidentMeV, c.Compton.AngleDeg = 0.1, 90
		}),
		"cs137": preset("compton", func(c *Config) {
			c.Compton.IncidentMeV, c.Compton.AngleDeg = 0.662, 180
		}),
		"backscatter": preset("compton", func(c *Config) {
			c.Compton.IncidentMeV, c.Compton.AngleDeg = 0.5, 180
		}),
		"linac": preset("compton", func(c *Config) {
			c.Compton.IncidentMeV, c.Compton.AngleDeg = 6.0, 30
		}),
	},
	"pair": {
		"threshold": preset("pair", func(c *Config) {
			c.Pair.IncidentMeV = 1.022
		}),
		"co60": preset("pair", func(c *Config) {
			c.Pair.IncidentMeV, c.Pair.NuclearCharge = 1.33, 82
		}),
		"linac": preset("pair", func(c *Config) {
			c.Pair.IncidentMeV, c.Pair.NuclearCharge = 10, 74
		}),
	},
	"rayleigh": {
		"soft-tissue": preset("rayleigh", func(c *Config) {
			c.Rayleigh.EnergyKeV, c.Rayleigh.AtomicNumber = 30, 7
		}),
		"lead": preset("rayleigh", func(c *Config) {
			c.Rayleigh.EnergyKeV, c.Rayleigh.AtomicNumber = 100, 82
		}),
	},
}

// GetPreset returns a copy of a named preset, or nil.
func GetPreset(experiment, name string) *Config {
	experimentPresets, ok := Presets[experiment]
	if !ok {
		return nil
	}
	cfg, ok := experimentPresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns preset names for an experiment in natural order.
func ListPresets(experiment string) []string {
	experimentPresets, ok := Presets[experiment]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(experimentPresets))
	for name := range experimentPresets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})
	return names
}
