package export

import (
	"fmt"

	"rentdesk-backend/internal/payment/domain"
	"rentdesk-backend/pkg/dateutil"

	"github.com/xuri/excelize/v2"
)

const paymentsSheet = "Payments"

// PaymentsHeader is the column order of the payment export
var PaymentsHeader = []string{
	"Payment Date",
	"Tenant",
	"Property",
	"Amount Paid",
	"Late Fee",
	"Period Start",
	"Period End",
	"Method",
	"Reference",
	"Status",
	"Notes",
}

var paymentColumnWidths = []float64{14, 24, 24, 14, 10, 14, 14, 14, 22, 12, 40}

// PaymentsWorkbook renders payments as an XLSX file. An empty slice produces
// a sheet with only the header row.
func PaymentsWorkbook(payments []*domain.PaymentView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(paymentsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range PaymentsHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(paymentsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(paymentsSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(paymentsSheet, name, name, paymentColumnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, p := range payments {
		row := i + 2
		values := []interface{}{
			dateutil.Format(p.PaymentDate),
			p.TenantName,
			p.PropertyName,
			p.AmountPaid,
			p.LateFee,
			dateutil.Format(p.PeriodStart),
			dateutil.Format(p.PeriodEnd),
			p.PaymentMethod,
			p.TransactionReference,
			p.Status,
			p.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(paymentsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, col+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
