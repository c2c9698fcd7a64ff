package experiment

import (
	"sort"

	"github.com/san-kum/photonlab/internal/config"
	"github.com/san-kum/photonlab/internal/sweep"
)

// Field is one named scalar output with its display unit.
type Field struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Report is everything an experiment hands to a display layer: scalar
// results for the current parameters, threshold flags and chart series.
type Report struct {
	Name   string          `json:"name"`
	Title  string          `json:"title"`
	Fields []Field         `json:"fields"`
	Flags  map[string]bool `json:"flags,omitempty"`
	Series []sweep.Series  `json:"series"`
	Notes  []string        `json:"notes,omitempty"`
}

// Field returns the value of a named field.
func (r *Report) Field(name string) (float64, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

func (r *Report) add(name string, value float64, unit string) {
	r.Fields = append(r.Fields, Field{Name: name, Value: value, Unit: unit})
}

// addAll appends a flat result mapping in name order.
func (r *Report) addAll(values map[string]float64, units map[string]string) {
	names := make([]string, 0, len(values))
	for name := range values {
		if _, isFlag := r.Flags[name]; isFlag {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.add(name, values[name], units[name])
	}
}

type Runner func(cfg *config.Config) (*Report, error)

type Experiment struct {
	Name        string
	Title       string
	Description string
	Params      []string
	Run         Runner
}
