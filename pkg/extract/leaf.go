package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"panchayat-scraper/pkg/models"
	"panchayat-scraper/pkg/translit"
)

// minLeafCells is the panchayat name cell plus twelve month-value cells,
// offset by the leading serial-number cell.
const minLeafCells = 14

// PanchayatData extracts one record per qualifying data row of a block-level
// page. The second cell is the panchayat name (transliterated); cells 3–14
// are the twelve month values, mapped positionally to April through March.
// Month values are trimmed but otherwise carried raw; empty cells and
// placeholder markers survive as-is. Rows with fewer than 14 cells emit
// nothing; there are no partial records. Every record is tagged with the
// caller's crawl context and district/block names.
func PanchayatData(doc *goquery.Document, cctx models.CrawlContext, district, block string) []models.PanchayatRecord {
	rows := dataRows(doc)
	if rows == nil {
		return nil
	}

	var records []models.PanchayatRecord
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minLeafCells {
			return
		}

		rec := models.PanchayatRecord{
			State:     cctx.State,
			StateCode: cctx.StateCode,
			FinYear:   cctx.FinYear,
			District:  district,
			Block:     block,
			Panchayat: translit.Romanize(cells.Eq(1).Text()),
		}
		for i := range rec.Months {
			rec.Months[i] = strings.TrimSpace(cells.Eq(2 + i).Text())
		}
		records = append(records, rec)
	})
	return records
}
