package config

import (
	"fmt"
	"math"
	"strings"
)

// param binds a dotted parameter name to the field it edits. Integer
// fields are rounded on write.
type param struct {
	get func(c *Config) float64
	set func(c *Config, v float64)
}

func floatParam(field func(c *Config) *float64) param {
	return param{
		get: func(c *Config) float64 { return *field(c) },
		set: func(c *Config, v float64) { *field(c) = v },
	}
}

func intParam(field func(c *Config) *int) param {
	return param{
		get: func(c *Config) float64 { return float64(*field(c)) },
		set: func(c *Config, v float64) { *field(c) = int(math.Round(v)) },
	}
}

var params = map[string]param{
	"photoelectric.photon_ev":        floatParam(func(c *Config) *float64 { return &c.Photoelectric.PhotonEV }),
	"photoelectric.work_function_ev": floatParam(func(c *Config) *float64 { return &c.Photoelectric.WorkFunctionEV }),
	"photoelectric.max_ev":           floatParam(func(c *Config) *float64 { return &c.Photoelectric.MaxEV }),
	"photoelectric.wavelength_nm":    floatParam(func(c *Config) *float64 { return &c.Photoelectric.WavelengthNM }),
	"compton.incident_mev":           floatParam(func(c *Config) *float64 { return &c.Compton.IncidentMeV }),
	"compton.angle_deg":              floatParam(func(c *Config) *float64 { return &c.Compton.AngleDeg }),
	"pair.incident_mev":              floatParam(func(c *Config) *float64 { return &c.Pair.IncidentMeV }),
	"pair.max_mev":                   floatParam(func(c *Config) *float64 { return &c.Pair.MaxMeV }),
	"pair.nuclear_charge":            intParam(func(c *Config) *int { return &c.Pair.NuclearCharge }),
	"rayleigh.energy_kev":            floatParam(func(c *Config) *float64 { return &c.Rayleigh.EnergyKeV }),
	"rayleigh.atomic_number":         intParam(func(c *Config) *int { return &c.Rayleigh.AtomicNumber }),
	"triplet.max_mev":                floatParam(func(c *Config) *float64 { return &c.Triplet.MaxMeV }),
	"photodisintegration.max_mev":    floatParam(func(c *Config) *float64 { return &c.Photodisintegration.MaxMeV }),
	"samples":                        intParam(func(c *Config) *int { return &c.Samples }),
}

func lookup(section, name string) (param, string, error) {
	key := name
	if section != "" && !strings.Contains(name, ".") {
		key = section + "." + name
	}
	p, ok := params[key]
	if !ok {
		return param{}, key, fmt.Errorf("unknown parameter: %s", key)
	}
	return p, key, nil
}

// Param reads a numeric parameter. A bare name is resolved inside section,
// so Param("compton", "angle_deg") and Param("", "compton.angle_deg")
// agree.
func (c *Config) Param(section, name string) (float64, error) {
	p, _, err := lookup(section, name)
	if err != nil {
		return 0, err
	}
	return p.get(c), nil
}

// SetParam writes a numeric parameter, resolving name like Param.
func (c *Config) SetParam(section, name string, v float64) error {
	p, _, err := lookup(section, name)
	if err != nil {
		return err
	}
	p.set(c, v)
	return nil
}
