package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiscalMonths_Order(t *testing.T) {
	require.Len(t, FiscalMonths, 12)
	assert.Equal(t, "April", FiscalMonths[0])
	assert.Equal(t, "December", FiscalMonths[8])
	assert.Equal(t, "January", FiscalMonths[9])
	assert.Equal(t, "March", FiscalMonths[11])
}

func TestCSVHeader(t *testing.T) {
	header := CSVHeader()
	require.Len(t, header, 18)
	assert.Equal(t, []string{"State", "State ID", "FY", "District", "Block", "Panchayat"}, header[:6])
	assert.Equal(t, FiscalMonths, header[6:])
}

func TestPanchayatRecord_CSVRow(t *testing.T) {
	rec := PanchayatRecord{
		State:     "TestState",
		StateCode: "09",
		FinYear:   "2023-24",
		District:  "Rampur",
		Block:     "Bilaspur",
		Panchayat: "Khanpur",
		Months: [12]string{
			"100", "110", "120", "130", "140", "150",
			"160", "170", "180", "190", "200", "210",
		},
	}

	row := rec.CSVRow()
	require.Len(t, row, 18)
	assert.Equal(t, "TestState", row[0])
	assert.Equal(t, "09", row[1])
	assert.Equal(t, "2023-24", row[2])
	assert.Equal(t, "Khanpur", row[5])
	assert.Equal(t, "100", row[6])  // April
	assert.Equal(t, "210", row[17]) // March
}

func TestPanchayatRecord_CSVRow_EmptyMonths(t *testing.T) {
	rec := PanchayatRecord{State: "S", StateCode: "01", FinYear: "2022-23"}
	row := rec.CSVRow()
	require.Len(t, row, 18)
	for _, v := range row[6:] {
		assert.Empty(t, v)
	}
}
