package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/photonlab/internal/constants"
)

const (
	DefaultSamples       = 200
	DefaultMaterial      = "Cesium"
	DefaultPhotonEV      = 25.0
	DefaultPhotoMaxEV    = 50.0
	DefaultWavelengthNM  = 0.05
	DefaultComptonMeV    = 1.0
	DefaultAngle         = 90.0
	DefaultPairMeV       = 2.5
	DefaultPairMaxMeV    = 10.0
	DefaultNuclearCharge = 26
	DefaultRayleighKeV   = 60.0
	DefaultRayleighZ     = 13
	DefaultTripletMaxMeV = 20.0
	DefaultNuclearMaxMeV = 30.0
)

type Config struct {
	Experiment          string              `yaml:"experiment" toml:"experiment"`
	Samples             int                 `yaml:"samples" toml:"samples"`
	Theme               string              `yaml:"theme" toml:"theme"`
	Photoelectric       PhotoelectricConfig `yaml:"photoelectric" toml:"photoelectric"`
	Compton             ComptonConfig       `yaml:"compton" toml:"compton"`
	Pair                PairConfig          `yaml:"pair" toml:"pair"`
	Rayleigh            RayleighConfig      `yaml:"rayleigh" toml:"rayleigh"`
	Triplet             RangeConfig         `yaml:"triplet" toml:"triplet"`
	Photodisintegration RangeConfig         `yaml:"photodisintegration" toml:"photodisintegration"`
}

type PhotoelectricConfig struct {
	Material string  `yaml:"material" toml:"material"`
	PhotonEV float64 `yaml:"photon_ev" toml:"photon_ev"`
	// WorkFunctionEV overrides the material table when positive.
	WorkFunctionEV float64 `yaml:"work_function_ev" toml:"work_function_ev"`
	MaxEV          float64 `yaml:"max_ev" toml:"max_ev"`
	WavelengthNM   float64 `yaml:"wavelength_nm" toml:"wavelength_nm"`
}

type ComptonConfig struct {
	IncidentMeV float64 `yaml:"incident_mev" toml:"incident_mev"`
	AngleDeg    float64 `yaml:"angle_deg" toml:"angle_deg"`
}

type PairConfig struct {
	IncidentMeV   float64 `yaml:"incident_mev" toml:"incident_mev"`
	MaxMeV        float64 `yaml:"max_mev" toml:"max_mev"`
	NuclearCharge int     `yaml:"nuclear_charge" toml:"nuclear_charge"`
}

type RayleighConfig struct {
	EnergyKeV    float64 `yaml:"energy_kev" toml:"energy_kev"`
	AtomicNumber int     `yaml:"atomic_number" toml:"atomic_number"`
}

type RangeConfig struct {
	MaxMeV float64 `yaml:"max_mev" toml:"max_mev"`
}

func DefaultConfig() *Config {
	return &Config{
		Experiment: "compton",
		Samples:    DefaultSamples,
		Theme:      "cyberpunk",
		Photoelectric: PhotoelectricConfig{
			Material:     DefaultMaterial,
			PhotonEV:     DefaultPhotonEV,
			MaxEV:        DefaultPhotoMaxEV,
			WavelengthNM: DefaultWavelengthNM,
		},
		Compton: ComptonConfig{
			IncidentMeV: DefaultComptonMeV,
			AngleDeg:    DefaultAngle,
		},
		Pair: PairConfig{
			IncidentMeV:   DefaultPairMeV,
			MaxMeV:        DefaultPairMaxMeV,
			NuclearCharge: DefaultNuclearCharge,
		},
		Rayleigh: RayleighConfig{
			EnergyKeV:    DefaultRayleighKeV,
			AtomicNumber: DefaultRayleighZ,
		},
		Triplet:             RangeConfig{MaxMeV: DefaultTripletMaxMeV},
		Photodisintegration: RangeConfig{MaxMeV: DefaultNuclearMaxMeV},
	}
}

// Load reads a YAML or TOML file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes path over cfg. Keys missing from the file keep their
// current values, which lets a file refine a preset.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	return nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch ext(path) {
	case ".toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(cfg)
		data = []byte(sb.String())
	case ".yaml", ".yml", "":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// WorkFunction resolves the photoelectric work function: the explicit
// override when set, otherwise the material table.
func (c *Config) WorkFunction() (float64, error) {
	if c.Photoelectric.WorkFunctionEV > 0 {
		return c.Photoelectric.WorkFunctionEV, nil
	}
	return constants.WorkFunction(c.Photoelectric.Material)
}

// Validate checks every section.
func (c *Config) Validate() error {
	for _, section := range sections {
		if err := c.ValidateFor(section); err != nil {
			return err
		}
	}
	return nil
}

var sections = []string{"photoelectric", "compton", "pair", "thomson", "rayleigh", "triplet", "photodisintegration"}

// ValidateFor checks only the values the named experiment reads, so a bad
// photoelectric material does not block a Thomson run.
func (c *Config) ValidateFor(experiment string) error {
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}

	var positive, nonNegative map[string]float64
	switch experiment {
	case "photoelectric":
		if _, err := c.WorkFunction(); err != nil {
			return err
		}
		positive = map[string]float64{
			"photoelectric.max_ev":        c.Photoelectric.MaxEV,
			"photoelectric.wavelength_nm": c.Photoelectric.WavelengthNM,
		}
		nonNegative = map[string]float64{"photoelectric.photon_ev": c.Photoelectric.PhotonEV}
	case "compton":
		positive = map[string]float64{"compton.incident_mev": c.Compton.IncidentMeV}
	case "pair":
		if c.Pair.NuclearCharge < 1 {
			return fmt.Errorf("pair.nuclear_charge must be positive, got %d", c.Pair.NuclearCharge)
		}
		positive = map[string]float64{"pair.max_mev": c.Pair.MaxMeV}
		nonNegative = map[string]float64{"pair.incident_mev": c.Pair.IncidentMeV}
	case "rayleigh":
		if c.Rayleigh.AtomicNumber < 1 {
			return fmt.Errorf("rayleigh.atomic_number must be positive, got %d", c.Rayleigh.AtomicNumber)
		}
		positive = map[string]float64{"rayleigh.energy_kev": c.Rayleigh.EnergyKeV}
	case "triplet":
		positive = map[string]float64{"triplet.max_mev": c.Triplet.MaxMeV}
	case "photodisintegration":
		positive = map[string]float64{"photodisintegration.max_mev": c.Photodisintegration.MaxMeV}
	}

	for _, name := range sortedNames(positive) {
		if err := constants.Check(name, positive[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(nonNegative) {
		if err := constants.CheckNonNegative(name, nonNegative[name]); err != nil {
			return err
		}
	}
	return nil
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy; presets are shared and must not be mutated.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
