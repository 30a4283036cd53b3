package crawler

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"panchayat-scraper/pkg/models"
)

// WriteCSV serializes records to a single UTF-8 CSV file at path: a header
// row followed by one row per record, in slice order. The file is written
// exactly once, never incrementally. An empty record slice writes nothing
// and creates no file.
func WriteCSV(path string, records []models.PanchayatRecord, log *logrus.Entry) error {
	if len(records) == 0 {
		log.Info("No data collected, skipping output file.")
		return nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(models.CSVHeader()); err != nil {
		return fmt.Errorf("failed to write CSV header to '%s': %w", path, err)
	}
	for _, rec := range records {
		if err := writer.Write(rec.CSVRow()); err != nil {
			return fmt.Errorf("failed to write CSV row to '%s': %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed flushing CSV output to '%s': %w", path, err)
	}
	if err := file.Sync(); err != nil {
		log.Warnf("Error syncing output file '%s': %v", path, err)
	}

	log.Infof("Data saved to %s with %d row(s).", path, len(records))
	return nil
}
