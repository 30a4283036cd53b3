package crawler

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panchayat-scraper/pkg/models"
)

func sampleRecord(panchayat string, firstMonth string) models.PanchayatRecord {
	rec := models.PanchayatRecord{
		State:     "TestState",
		StateCode: "09",
		FinYear:   "2023-24",
		District:  "Rampur",
		Block:     "Bilaspur",
		Panchayat: panchayat,
	}
	rec.Months[0] = firstMonth
	return rec
}

func TestWriteCSV_EmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := WriteCSV(path, nil, testLogger())
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file may be created for an empty record set")
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []models.PanchayatRecord{
		sampleRecord("Alpha", "100"),
		sampleRecord("Beta", "200"),
	}

	require.NoError(t, WriteCSV(path, records, testLogger()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.CSVHeader(), rows[0])
	assert.Len(t, rows[0], 18)
	assert.Equal(t, "Alpha", rows[1][5])
	assert.Equal(t, "100", rows[1][6])
	assert.Equal(t, "Beta", rows[2][5])
	assert.Equal(t, "200", rows[2][6])
}

func TestWriteCSV_PreservesInsertionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []models.PanchayatRecord{
		sampleRecord("Zulu", "1"),
		sampleRecord("Alpha", "2"),
		sampleRecord("Mike", "3"),
	}

	require.NoError(t, WriteCSV(path, records, testLogger()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Zulu", rows[1][5])
	assert.Equal(t, "Alpha", rows[2][5])
	assert.Equal(t, "Mike", rows[3][5])
}

func TestWriteCSV_UTF8Values(t *testing.T) {
	// Month values may carry raw non-ASCII text from the source table
	path := filepath.Join(t.TempDir(), "out.csv")
	rec := sampleRecord("Kharif", "१२")

	require.NoError(t, WriteCSV(path, []models.PanchayatRecord{rec}, testLogger()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "१२", rows[1][6])
}

func TestWriteCSV_OverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, []models.PanchayatRecord{sampleRecord("First", "1"), sampleRecord("Second", "2")}, testLogger()))
	require.NoError(t, WriteCSV(path, []models.PanchayatRecord{sampleRecord("Only", "9")}, testLogger()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Only", rows[1][5])
}
