package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/photonlab/internal/config"
)

// paramFlags are the experiment parameters exposed as flags. Each applies
// to whichever experiment runs, so --max-mev sets pair, triplet or
// photodisintegration range.
var paramFlags = []struct {
	name  string
	usage string
}{
	{"photon_ev", "photoelectric photon energy (eV)"},
	{"work_function_ev", "photoelectric work function override (eV)"},
	{"max_ev", "photoelectric sweep maximum (eV)"},
	{"wavelength_nm", "photoelectric calculator wavelength (nm)"},
	{"incident_mev", "compton or pair photon energy (MeV)"},
	{"angle_deg", "compton scattering angle (degrees)"},
	{"max_mev", "sweep maximum (MeV)"},
	{"nuclear_charge", "pair production nuclear charge Z"},
	{"energy_kev", "rayleigh photon energy (keV)"},
	{"atomic_number", "rayleigh target atomic number"},
}

func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

func addParamFlags(cmd *cobra.Command) {
	for _, p := range paramFlags {
		cmd.Flags().Float64(flagName(p.name), 0, p.usage)
	}
	cmd.Flags().StringVar(&material, "material", "", "photoelectric material (see materials)")
}

// resolveConfig builds the run configuration. Each layer overrides the one
// before it: defaults, --preset, --config, then explicit flags. name, when
// set, picks the experiment.
func resolveConfig(cmd *cobra.Command, name string) (*config.Config, error) {
	exp := name
	if exp == "" && preset != "" {
		return nil, fmt.Errorf("--preset needs an experiment argument")
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(exp, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(exp))
		}
		slog.Debug("applied preset", "experiment", exp, "preset", preset)
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Debug("loaded config", "path", configFile)
	}

	if exp != "" {
		cfg.Experiment = exp
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("material") {
		cfg.Photoelectric.Material = material
		cfg.Photoelectric.WorkFunctionEV = 0
	}

	for _, p := range paramFlags {
		flag := cmd.Flags().Lookup(flagName(p.name))
		if flag == nil || !flag.Changed {
			continue
		}
		v, err := cmd.Flags().GetFloat64(flag.Name)
		if err != nil {
			return nil, err
		}
		if err := cfg.SetParam(cfg.Experiment, p.name, v); err != nil {
			return nil, fmt.Errorf("--%s does not apply to %s: %w", flag.Name, cfg.Experiment, err)
		}
	}
	return cfg, nil
}
