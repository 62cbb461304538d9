// Package export writes growth-rate tables to an xlsx workbook, one sheet per income group.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sekarsister/gdpgrowth/internal/table"
)

// MaxSheetName is the longest sheet name Excel accepts.
const MaxSheetName = 31

// SheetName derives a sheet name from a group label.
func SheetName(label string) string {
	name := strings.ReplaceAll(label, "-", " ")
	if r := []rune(name); len(r) > MaxSheetName {
		name = string(r[:MaxSheetName])
	}
	return name
}

// Workbook builds the workbook in memory. The caller must Close it.
func Workbook(rates table.GrowthTable) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, label := range table.GroupLabels {
		sheet := SheetName(label)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, sheet, rates[i], header); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// writeSheet lays out one group: warming labels across row 1, growth labels down column A.
func writeSheet(f *excelize.File, sheet string, layer table.Layer, header int) error {
	top := make([]interface{}, 0, table.NumWarming+1)
	top = append(top, "")
	for _, w := range table.WarmingLabels {
		top = append(top, w)
	}
	if err := f.SetSheetRow(sheet, "A1", &top); err != nil {
		return err
	}

	for j, g := range table.GrowthLabels {
		row := make([]interface{}, 0, table.NumWarming+1)
		row = append(row, g)
		for _, v := range layer[j] {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, j+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(table.NumWarming+1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}
	lastRow, err := excelize.CoordinatesToCellName(1, table.NumGrowth+1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A2", lastRow, header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 14); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "F", 12)
}
