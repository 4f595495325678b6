package dashboard

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"pizzapension/internal/models"
)

// エクスポートファイルの構成
const (
	ExportFilename = "pizza-och-pension-anmalningar.xlsx"
	ExportSheet    = "Anmälningar"
	exportDate     = "2006-01-02"
)

// ExportHeaders はエクスポートするシートの列見出しです
var ExportHeaders = []string{"Förnamn", "Efternamn", "E-post", "Pizza", "Dryck", "Datum"}

// WriteWorkbook は regs を一登録一行の xlsx ブックとして書き込みます。日付は loc で表示します
func WriteWorkbook(w io.Writer, regs []models.Registration, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(ExportHeaders))
	for i, h := range ExportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range regs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.FirstName, r.LastName, r.Email, r.Pizza, r.Drink, r.CreatedAt.In(loc).Format(exportDate)}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
