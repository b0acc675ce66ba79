package excel

import (
	"fmt"

	"github.com/tallyflow/tallyflow/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const templateSheet = "Invoices"

// BuildTemplate generates the downloadable import template: the exact header
// row the normalizer requires plus one sample row showing the expected shape.
func BuildTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, fmt.Errorf("rename template sheet: %w", err)
	}

	header := make([]interface{}, 0, len(entity.TemplateColumns()))
	for _, col := range entity.TemplateColumns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}

	sample := []interface{}{
		"INV-001", "2025-04-01", "Sales", "Acme Traders", "April supply",
		"Widget 10mm", "Sales Ledger", 2, 100, 0, 18, 18, 0,
		"Output CGST", "Output SGST", "", "My Company Pvt Ltd",
	}
	if err := f.SetSheetRow(templateSheet, "A2", &sample); err != nil {
		return nil, fmt.Errorf("write template sample row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize template: %w", err)
	}
	return buf.Bytes(), nil
}
