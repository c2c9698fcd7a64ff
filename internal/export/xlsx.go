package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/photonlab/internal/experiment"
)

const summarySheet = "Summary"

// WriteXLSX writes a workbook with a summary sheet of scalar fields and one
// sheet per series.
func WriteXLSX(w io.Writer, rep *experiment.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(summarySheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{"Field", "Value", "Unit"}); err != nil {
		return err
	}
	row := 2
	for _, field := range rep.Fields {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, []interface{}{field.Name, field.Value, field.Unit}); err != nil {
			return err
		}
		row++
	}
	for _, name := range sortedFlags(rep.Flags) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, []interface{}{name, rep.Flags[name], ""}); err != nil {
			return err
		}
		row++
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	used := map[string]bool{summarySheet: true}
	for i, s := range rep.Series {
		sheet := sheetName(s.Name, i, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		sw, err := f.NewStreamWriter(sheet)
		if err != nil {
			return err
		}
		if err := sw.SetRow("A1", []interface{}{s.XLabel, s.YLabel}); err != nil {
			return err
		}
		for j := range s.X {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			if err := sw.SetRow(cell, []interface{}{s.X[j], s.Y[j]}); err != nil {
				return err
			}
		}
		if err := sw.Flush(); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

// sheetName makes a unique worksheet name within Excel's 31 character
// limit and without the characters it rejects.
func sheetName(name string, idx int, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	if clean == "" {
		clean = "Series"
	}
	if r := []rune(clean); len(r) > 28 {
		clean = string(r[:28])
	}
	candidate := clean
	if used[candidate] {
		candidate = fmt.Sprintf("%s %d", clean, idx+1)
	}
	used[candidate] = true
	return candidate
}
