package export

import (
	"bytes"
	"testing"
	"time"

	"rentdesk-backend/internal/payment/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestPaymentsWorkbook(t *testing.T) {
	paid := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	payments := []*domain.PaymentView{
		{
			Payment: domain.Payment{
				PaymentDate:   paid,
				AmountPaid:    1200,
				PeriodStart:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				PeriodEnd:     time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
				PaymentMethod: "bank_transfer",
				Status:        domain.StatusCompleted,
			},
			TenantName:   "Ada Lovelace",
			PropertyName: "Maple Court 4B",
		},
	}

	data, err := PaymentsWorkbook(payments)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{paymentsSheet}, f.GetSheetList())

	rows, err := f.GetRows(paymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, PaymentsHeader, rows[0])
	assert.Equal(t, "2026-10-03", rows[1][0])
	assert.Equal(t, "Ada Lovelace", rows[1][1])
	assert.Equal(t, "Maple Court 4B", rows[1][2])
	assert.Equal(t, "1200", rows[1][3])
}

func TestPaymentsWorkbook_Empty(t *testing.T) {
	data, err := PaymentsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(paymentsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
