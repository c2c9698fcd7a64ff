// Package export writes experiment reports and their series to files or
// streams in tabular, document and image formats.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/photonlab/internal/experiment"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	XLSX Format = "xlsx"
	SVG  Format = "svg"
	PNG  Format = "png"
	// ChartSVG renders through the charting library instead of the
	// lightweight path writer.
	ChartSVG Format = "chart-svg"
)

var Formats = []Format{CSV, JSON, XLSX, SVG, PNG, ChartSVG}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format: %s (available: %v)", s, Formats)
}

// FormatFromPath guesses a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Write encodes rep to w in the given format.
func Write(w io.Writer, format Format, rep *experiment.Report) error {
	switch format {
	case CSV:
		return WriteCSV(w, rep)
	case JSON:
		return WriteJSON(w, rep)
	case XLSX:
		return WriteXLSX(w, rep)
	case SVG:
		_, err := io.WriteString(w, ReportToSVG(rep, 800, 500))
		return err
	case PNG:
		return WriteChart(w, rep, ChartPNG)
	case ChartSVG:
		return WriteChart(w, rep, ChartVector)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// WriteFile creates path and writes rep into it.
func WriteFile(path string, format Format, rep *experiment.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, format, rep); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
