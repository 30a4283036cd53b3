package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"panchayat-scraper/pkg/models"
	"panchayat-scraper/pkg/translit"
)

// Links extracts (name, absolute URL) pairs from the directory table of doc.
// The link is looked for in the second cell of each data row; its visible
// text is transliterated to Roman script and its href resolved against base.
// Rows with fewer than two cells or no link are silently skipped. A nil doc
// or missing table yields an empty result, not an error. Output order
// follows row order.
func Links(doc *goquery.Document, base *url.URL) []models.Link {
	rows := dataRows(doc)
	if rows == nil {
		return nil
	}

	var links []models.Link
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		linkTag := cells.Eq(1).Find("a").First()
		if linkTag.Length() == 0 {
			return
		}
		href, hasHref := linkTag.Attr("href")
		if !hasHref {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return // Unparseable href, nothing to follow
		}

		links = append(links, models.Link{
			Name: translit.Romanize(linkTag.Text()),
			URL:  base.ResolveReference(ref).String(),
		})
	})
	return links
}
