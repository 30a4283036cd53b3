// Package models defines the data shapes shared across the crawl: the link
// pairs discovered at each directory level, the per-state crawl context, and
// the flattened panchayat record written to CSV.
package models

// FiscalMonths lists CSV month columns in fiscal-year order. The source
// tables are assumed to lay out their twelve value columns starting at April
// and wrapping to March; if the site ever changes that layout, this slice is
// the single place encoding the assumption.
var FiscalMonths = []string{
	"April", "May", "June", "July", "August", "September",
	"October", "November", "December", "January", "February", "March",
}

// Link is a (display name, absolute URL) pair extracted from a directory
// table. The name has already been transliterated to Roman script.
type Link struct {
	Name string
	URL  string
}

// CrawlContext carries the state-level identifiers recovered from a state
// URL's query parameters. It is threaded unchanged through every descendant
// district and block.
type CrawlContext struct {
	State     string // state_name query parameter, "Unknown" if absent
	StateCode string // state_code query parameter, "Unknown" if absent
	FinYear   string // fin_year query parameter, "Unknown" if absent
}

// PanchayatRecord is one leaf row of the export: a panchayat tagged with its
// ancestor path and twelve raw month values. Month values are carried as the
// source rendered them (numeric strings, empty cells, placeholder markers).
type PanchayatRecord struct {
	State     string
	StateCode string
	FinYear   string
	District  string
	Block     string
	Panchayat string
	Months    [12]string // fiscal order, index 0 = April ... index 11 = March
}

// CSVHeader returns the fixed 18-column header row.
func CSVHeader() []string {
	header := []string{"State", "State ID", "FY", "District", "Block", "Panchayat"}
	return append(header, FiscalMonths...)
}

// CSVRow flattens the record in header order.
func (r PanchayatRecord) CSVRow() []string {
	row := []string{r.State, r.StateCode, r.FinYear, r.District, r.Block, r.Panchayat}
	return append(row, r.Months[:]...)
}
