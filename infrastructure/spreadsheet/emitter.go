package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName    = "Отчет"
	headerRow    = 3
	firstDataRow = 4
	// formato embutido "#,##0.00"
	numberFormat = 4
	totalsLabel  = "Итого"
)

type Emitter interface {
	Emit(userID, storeID int64, report domain.Report) (string, error)
}

type ExcelEmitter struct {
	dataRoot string
}

func NewEmitter(cfg *config.Config) Emitter {
	return &ExcelEmitter{dataRoot: cfg.Report.DataRoot}
}

// ReportPath monta <raiz>/reports/<usuário>/<loja>/report<início>.xlsx
func ReportPath(dataRoot string, userID, storeID int64, periodStart time.Time) string {
	return filepath.Join(
		dataRoot,
		"reports",
		strconv.FormatInt(userID, 10),
		strconv.FormatInt(storeID, 10),
		fmt.Sprintf("report%s.xlsx", periodStart.Format(time.DateOnly)),
	)
}

func (e *ExcelEmitter) Emit(userID, storeID int64, report domain.Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return "", fmt.Errorf("erro ao renomear a planilha: %w", err)
	}

	widths := newColumnWidths(len(domain.ReportColumns))

	storeLine := fmt.Sprintf("Магазин: %s", report.StoreName)
	periodLine := fmt.Sprintf("Период: %s", report.Period.String())
	if err := f.SetCellValue(sheetName, "A1", storeLine); err != nil {
		return "", err
	}
	if err := f.SetCellValue(sheetName, "A2", periodLine); err != nil {
		return "", err
	}
	widths.observe(1, storeLine)
	widths.observe(1, periodLine)

	header := make([]interface{}, len(domain.ReportColumns))
	for i, column := range domain.ReportColumns {
		header[i] = column
		widths.observe(i+1, column)
	}
	if err := f.SetSheetRow(sheetName, cellName(1, headerRow), &header); err != nil {
		return "", err
	}

	for i, row := range report.Rows {
		values := make([]interface{}, 0, len(domain.ReportColumns))
		values = append(values, productKeyValue(row.ProductKey), row.VendorCode)
		widths.observe(1, string(row.ProductKey))
		widths.observe(2, row.VendorCode)

		for j, v := range row.Values() {
			values = append(values, v)
			widths.observe(j+3, strconv.FormatFloat(v, 'f', 2, 64))
		}

		if err := f.SetSheetRow(sheetName, cellName(1, firstDataRow+i), &values); err != nil {
			return "", err
		}
	}

	lastDataRow := firstDataRow + len(report.Rows) - 1
	totalsRow := lastDataRow + 1
	lastColumn := len(domain.ReportColumns)

	if err := f.SetCellValue(sheetName, cellName(1, totalsRow), totalsLabel); err != nil {
		return "", err
	}
	for col := 3; col <= lastColumn; col++ {
		letter, _ := excelize.ColumnNumberToName(col)
		formula := fmt.Sprintf("SUM(%s%d:%s%d)", letter, firstDataRow, letter, lastDataRow)
		if err := f.SetCellFormula(sheetName, cellName(col, totalsRow), formula); err != nil {
			return "", err
		}
	}

	if err := e.applyStyles(f, lastDataRow, totalsRow, lastColumn); err != nil {
		return "", err
	}

	for col, width := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheetName, name, name, float64(width+2)); err != nil {
			return "", err
		}
	}

	path := ReportPath(e.dataRoot, userID, storeID, report.Period.Start)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório do relatório: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("erro ao salvar o relatório: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(report.Rows),
	}).Info("spreadsheet: relatório salvo")

	return path, nil
}

func (e *ExcelEmitter) applyStyles(f *excelize.File, lastDataRow, totalsRow, lastColumn int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	number, err := f.NewStyle(&excelize.Style{NumFmt: numberFormat})
	if err != nil {
		return err
	}
	totals, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: "FF0000"},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		NumFmt: numberFormat,
	})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheetName, cellName(1, headerRow), cellName(lastColumn, headerRow), bold); err != nil {
		return err
	}
	if lastDataRow >= firstDataRow {
		if err := f.SetCellStyle(sheetName, cellName(3, firstDataRow), cellName(lastColumn, lastDataRow), number); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, cellName(1, totalsRow), cellName(1, totalsRow), bold); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cellName(3, totalsRow), cellName(lastColumn, totalsRow), totals)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// productKeyValue grava artigos numéricos como número para não gerar alerta no Excel
func productKeyValue(key domain.ProductKey) interface{} {
	if id, err := strconv.ParseInt(string(key), 10, 64); err == nil {
		return id
	}
	return string(key)
}

type columnWidths []int

func newColumnWidths(n int) columnWidths {
	return make(columnWidths, n)
}

func (w columnWidths) observe(col int, value string) {
	if col < 1 || col > len(w) {
		return
	}
	if n := utf8.RuneCountInString(value); n > w[col-1] {
		w[col-1] = n
	}
}
