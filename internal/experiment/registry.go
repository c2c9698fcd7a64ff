package experiment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/photonlab/internal/config"
)

type Registry struct {
	experiments map[string]Experiment
}

func NewRegistry() *Registry {
	r := &Registry{experiments: make(map[string]Experiment)}

	r.Register(Experiment{
		Name: "photoelectric", Title: "Photoelectric Effect",
		Description: "photon energy against a work function",
		Params:      []string{"photon_ev", "work_function_ev", "max_ev", "wavelength_nm"},
		Run:         runPhotoelectric,
	})
	r.Register(Experiment{
		Name: "compton", Title: "Compton Scattering",
		Description: "wavelength shift with angle",
		Params:      []string{"incident_mev", "angle_deg"},
		Run:         runCompton,
	})
	r.Register(Experiment{
		Name: "pair", Title: "Pair Production",
		Description: "photon conversion to e-e+",
		Params:      []string{"incident_mev", "max_mev", "nuclear_charge"},
		Run:         runPair,
	})
	r.Register(Experiment{
		Name: "thomson", Title: "Thomson Scattering",
		Description: "classical 1 + cos²θ",
		Run:         runThomson,
	})
	r.Register(Experiment{
		Name: "rayleigh", Title: "Rayleigh Scattering (Coherent)",
		Description: "forward-peaked elastic scatter",
		Params:      []string{"energy_kev", "atomic_number"},
		Run:         runRayleigh,
	})
	r.Register(Experiment{
		Name: "triplet", Title: "Triplet Production",
		Description: "pair in an electron field",
		Params:      []string{"max_mev"},
		Run:         runTriplet,
	})
	r.Register(Experiment{
		Name: "photodisintegration", Title: "Photodisintegration",
		Description: "giant dipole resonance",
		Params:      []string{"max_mev"},
		Run:         runPhotodisintegration,
	})

	return r
}

func (r *Registry) Register(e Experiment) {
	r.experiments[e.Name] = e
}

func (r *Registry) Get(name string) (Experiment, error) {
	e, ok := r.experiments[name]
	if !ok {
		return Experiment{}, fmt.Errorf("unknown experiment: %s (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return e, nil
}

// Run looks up an experiment and runs it against cfg after validation.
func (r *Registry) Run(name string, cfg *config.Config) (*Report, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateFor(name); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	rep, err := e.Run(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rep.Name, rep.Title = e.Name, e.Title
	return rep, nil
}

// List returns experiment names in the order the menus show them.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.experiments))
	for name := range r.experiments {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, oj := order(names[i]), order(names[j])
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
	return names
}

var menuOrder = []string{"photoelectric", "compton", "pair", "thomson", "rayleigh", "triplet", "photodisintegration"}

func order(name string) int {
	for i, n := range menuOrder {
		if n == name {
			return i
		}
	}
	return len(menuOrder)
}
