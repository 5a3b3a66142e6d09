package httpapi

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

var inventoryHeader = []string{"Objeto", "Marca", "Material", "Cantidad", "Estado", "Detalle", "Fecha"}

var inventoryColumnWidths = []float64{28, 18, 18, 10, 12, 36, 14}

// statusFillColor picks the banner color of a status cell.
func statusFillColor(status string) string {
	switch status {
	case domain.StatusGood:
		return "#C6EFCE"
	case domain.StatusPending:
		return "#FFF2CC"
	case domain.StatusBad:
		return "#F9CBAD"
	}
	return "#FFFFFF"
}

// sheetName renders "Sector - Location" within the 31-character sheet name
// limit, appending a counter when two locations would collide.
func sheetName(sectorName, locationName string, used map[string]int) string {
	name := sectorName + " - " + locationName
	if len(name) > 31 {
		name = name[:31]
	}
	n := used[name]
	used[name]++
	if n > 0 {
		suffix := fmt.Sprintf(" (%d)", n+1)
		if len(name)+len(suffix) > 31 {
			name = name[:31-len(suffix)]
		}
		name += suffix
	}
	return name
}

// BuildInventoryWorkbook renders the export tree as one worksheet per
// location: a merged title row, one banner row per floor, and under each
// floor a block per room with the item table.
func BuildInventoryWorkbook(tree []*repository.ExportLocation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on error paths.

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}
	floorStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create floor style: %w", err)
	}
	roomStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#EDEDED"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create room style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	statusStyles := map[string]int{}
	for _, st := range []string{domain.StatusGood, domain.StatusPending, domain.StatusBad} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{statusFillColor(st)}, Pattern: 1},
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create status style: %w", err)
		}
		statusStyles[st] = id
	}

	used := map[string]int{}
	for _, loc := range tree {
		sheet := sheetName(loc.SectorName, loc.LocationName, used)
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		for i, width := range inventoryColumnWidths {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert column number: %w", err)
			}
			if err := f.SetColWidth(sheet, col, col, width); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set column width: %w", err)
			}
		}

		row := 1
		title := fmt.Sprintf("Inventario %s / %s", loc.SectorName, loc.LocationName)
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), title); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write title: %w", err)
		}
		last, _ := excelize.ColumnNumberToName(len(inventoryHeader))
		if err := f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row)); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to merge title: %w", err)
		}
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), titleStyle)
		row += 2

		for _, fl := range loc.Floors {
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetCellValue(sheet, cell, fmt.Sprintf("Piso %d", fl.FloorNumber)); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write floor banner: %w", err)
			}
			_ = f.MergeCell(sheet, cell, fmt.Sprintf("%s%d", last, row))
			_ = f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", last, row), floorStyle)
			row++

			for _, rm := range fl.Rooms {
				cell := fmt.Sprintf("A%d", row)
				if err := f.SetCellValue(sheet, cell, rm.RoomName); err != nil {
					f.Close()
					return nil, fmt.Errorf("failed to write room banner: %w", err)
				}
				_ = f.MergeCell(sheet, cell, fmt.Sprintf("%s%d", last, row))
				_ = f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", last, row), roomStyle)
				row++

				for i, hdr := range inventoryHeader {
					c, err := excelize.CoordinatesToCellName(i+1, row)
					if err != nil {
						f.Close()
						return nil, fmt.Errorf("failed to convert coordinates: %w", err)
					}
					if err := f.SetCellValue(sheet, c, hdr); err != nil {
						f.Close()
						return nil, fmt.Errorf("failed to write header cell: %w", err)
					}
					_ = f.SetCellStyle(sheet, c, c, headerStyle)
				}
				row++

				if len(rm.Items) == 0 {
					if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Sin objetos registrados"); err != nil {
						f.Close()
						return nil, fmt.Errorf("failed to write empty row: %w", err)
					}
					row++
				}
				for _, it := range rm.Items {
					values := []any{
						it.KindName,
						it.Brand,
						it.Material,
						it.Quantity,
						domain.StatusLabel(it.Status),
						it.Detail,
						it.RecordedDate.Format("2006-01-02"),
					}
					for i, v := range values {
						c, err := excelize.CoordinatesToCellName(i+1, row)
						if err != nil {
							f.Close()
							return nil, fmt.Errorf("failed to convert coordinates: %w", err)
						}
						if err := f.SetCellValue(sheet, c, v); err != nil {
							f.Close()
							return nil, fmt.Errorf("failed to write item cell: %w", err)
						}
					}
					if styleID, ok := statusStyles[it.Status]; ok {
						c, _ := excelize.CoordinatesToCellName(5, row)
						_ = f.SetCellStyle(sheet, c, c, styleID)
					}
					row++
				}
				row++
			}
		}
	}

	if len(tree) > 0 {
		f.DeleteSheet("Sheet1")
	} else {
		// keep the default sheet so the workbook stays valid
		_ = f.SetCellValue("Sheet1", "A1", "Sin ubicaciones registradas")
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return &buf, nil
}
