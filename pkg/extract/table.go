// Package extract pulls link pairs and panchayat records out of the fixed
// directory-table layout used by the source site: a single table with id
// "t1", four header rows, the entity link in the second column, and (on leaf
// pages) twelve month-value columns after it.
package extract

import (
	"github.com/PuerkitoBio/goquery"
)

const (
	tableSelector  = "table#t1"
	headerRowCount = 4 // Leading rows carry column headings, not data
)

// dataRows returns the data rows of the directory table: every <tr> of
// table#t1 after the header rows. Returns nil when the document is absent,
// the table is missing, or nothing follows the headers; callers treat all
// three as "nothing to extract".
func dataRows(doc *goquery.Document) *goquery.Selection {
	if doc == nil {
		return nil
	}
	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil
	}
	rows := table.Find("tr")
	if rows.Length() <= headerRowCount {
		return nil
	}
	return rows.Slice(headerRowCount, goquery.ToEnd)
}
