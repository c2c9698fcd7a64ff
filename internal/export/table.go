package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/photonlab/internal/experiment"
	"github.com/san-kum/photonlab/internal/sweep"
)

// ExportData is the JSON document for a report.
type ExportData struct {
	Experiment string             `json:"experiment"`
	Title      string             `json:"title"`
	Fields     map[string]float64 `json:"fields"`
	Units      map[string]string  `json:"units"`
	Flags      map[string]bool    `json:"flags,omitempty"`
	Series     []sweep.Series     `json:"series"`
	Notes      []string           `json:"notes,omitempty"`
}

func NewExportData(rep *experiment.Report) ExportData {
	data := ExportData{
		Experiment: rep.Name,
		Title:      rep.Title,
		Fields:     make(map[string]float64, len(rep.Fields)),
		Units:      make(map[string]string, len(rep.Fields)),
		Flags:      rep.Flags,
		Series:     rep.Series,
		Notes:      rep.Notes,
	}
	for _, f := range rep.Fields {
		data.Fields[f.Name] = f.Value
		if f.Unit != "" {
			data.Units[f.Name] = f.Unit
		}
	}
	return data
}

func WriteJSON(w io.Writer, rep *experiment.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(rep))
}

// WriteCSV writes every series in long form: series, x, y.
func WriteCSV(w io.Writer, rep *experiment.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"series", "x", "y", "x_label", "y_label"}); err != nil {
		return err
	}
	for _, s := range rep.Series {
		for i := range s.X {
			row := []string{
				s.Name,
				strconv.FormatFloat(s.X[i], 'g', 10, 64),
				strconv.FormatFloat(s.Y[i], 'g', 10, 64),
				s.XLabel,
				s.YLabel,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
