package dashboard

import (
	"bytes"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pizzapension/internal/models"
)

func TestWriteWorkbook(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	rs := []models.Registration{
		{ID: 1, FirstName: "Anna", LastName: "Berg", Email: "a@b.se", Pizza: "Hawaii", Drink: "Cola",
			CreatedAt: time.Date(2024, 11, 4, 23, 30, 0, 0, time.UTC)},
		{ID: 2, FirstName: "Björn", LastName: "Ek", Email: "b@e.se", Pizza: "Vesuvio", Drink: "Öl",
			CreatedAt: time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, rs, stockholm))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{ExportSheet}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		ExportHeaders,
		{"Anna", "Berg", "a@b.se", "Hawaii", "Cola", "2024-11-05"},
		{"Björn", "Ek", "b@e.se", "Vesuvio", "Öl", "2024-11-05"},
	}, rows)
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Equal(t, [][]string{ExportHeaders}, rows)
}
