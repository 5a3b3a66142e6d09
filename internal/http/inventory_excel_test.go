package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

func exportFixture() []*repository.ExportLocation {
	recorded := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return []*repository.ExportLocation{
		{
			LocationID:   "loc-1",
			LocationName: "Edificio A",
			SectorName:   "Planta",
			Floors: []repository.ExportFloor{
				{
					FloorID:     "fl-1",
					FloorNumber: 1,
					Rooms: []repository.ExportRoom{
						{
							RoomID:   "rm-1",
							RoomName: "Baño hombres",
							Items: []repository.ExportItem{
								{KindName: "Lavamanos", Brand: "Roca", Material: "Cerámica", Quantity: 2, Status: domain.StatusGood, RecordedDate: recorded},
								{KindName: "Espejos", Quantity: 1, Status: domain.StatusBad, Detail: "trizado", RecordedDate: recorded},
							},
						},
						{
							RoomID:   "rm-2",
							RoomName: "Baño mujeres",
						},
					},
				},
			},
		},
	}
}

func TestBuildInventoryWorkbook(t *testing.T) {
	buf, err := BuildInventoryWorkbook(exportFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Contains(t, sheets, "Planta - Edificio A")
	assert.NotContains(t, sheets, "Sheet1")

	title, err := f.GetCellValue("Planta - Edificio A", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Inventario Planta / Edificio A", title)

	rows, err := f.GetRows("Planta - Edificio A")
	require.NoError(t, err)

	var sawFloor, sawHeader, sawItem, sawEmptyRoom bool
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case "Piso 1":
			sawFloor = true
		case "Objeto":
			sawHeader = true
		case "Lavamanos":
			sawItem = true
			require.GreaterOrEqual(t, len(row), 5)
			assert.Equal(t, "Roca", row[1])
			assert.Equal(t, "Cerámica", row[2])
			assert.Equal(t, "2", row[3])
			assert.Equal(t, "Good", row[4])
		case "Sin objetos registrados":
			sawEmptyRoom = true
		}
	}
	assert.True(t, sawFloor, "floor banner present")
	assert.True(t, sawHeader, "item table header present")
	assert.True(t, sawItem, "item row present")
	assert.True(t, sawEmptyRoom, "empty room marker present")
}

func TestBuildInventoryWorkbookSheetNameLimit(t *testing.T) {
	tree := []*repository.ExportLocation{
		{LocationName: "Edificio de Mantenimiento General Norte", SectorName: "Planta Industrial Principal"},
		{LocationName: "Edificio de Mantenimiento General Sur", SectorName: "Planta Industrial Principal"},
	}
	buf, err := BuildInventoryWorkbook(tree)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)
	for _, name := range sheets {
		assert.LessOrEqual(t, len(name), 31)
	}
	assert.NotEqual(t, sheets[0], sheets[1])
}

func TestBuildInventoryWorkbookEmptyTree(t *testing.T) {
	buf, err := BuildInventoryWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Sheet1")
}
