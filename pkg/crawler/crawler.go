// Package crawler drives the fixed-depth walk over the administrative
// directory: state pages yield district links, district pages yield block
// links, and block pages yield panchayat records. The walk is strictly
// sequential with one request outstanding at a time; a fetch failure skips
// the affected subtree and never aborts the run.
package crawler

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"panchayat-scraper/pkg/config"
	"panchayat-scraper/pkg/extract"
	"panchayat-scraper/pkg/fetch"
	"panchayat-scraper/pkg/models"
	"panchayat-scraper/pkg/utils"
)

// unknownPlaceholder fills in for state identifiers missing from a state
// URL's query string. Not an error condition.
const unknownPlaceholder = "Unknown"

// Stats summarizes one crawl run.
type Stats struct {
	StatesProcessed  int
	StatesFailed     int
	DistrictsFound   int
	DistrictsFailed  int
	BlocksFound      int
	BlocksFailed     int
	RecordsCollected int
}

// Crawler walks the state list configured in cfg and accumulates panchayat
// records. It holds no mutable state between runs.
type Crawler struct {
	cfg     *config.AppConfig
	fetcher *fetch.Fetcher
	baseURL *url.URL
	log     *logrus.Entry
}

// New creates a Crawler. cfg must already be validated.
func New(cfg *config.AppConfig, fetcher *fetch.Fetcher, log *logrus.Entry) (*Crawler, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	return &Crawler{
		cfg:     cfg,
		fetcher: fetcher,
		baseURL: baseURL,
		log:     log,
	}, nil
}

// ContextFromURL recovers the state identifiers from a state URL's query
// parameters. Each missing parameter defaults to the Unknown placeholder.
func ContextFromURL(stateURL string) models.CrawlContext {
	cctx := models.CrawlContext{
		State:     unknownPlaceholder,
		StateCode: unknownPlaceholder,
		FinYear:   unknownPlaceholder,
	}
	parsed, err := url.Parse(stateURL)
	if err != nil {
		return cctx
	}
	query := parsed.Query()
	if v := query.Get("state_name"); v != "" {
		cctx.State = v
	}
	if v := query.Get("state_code"); v != "" {
		cctx.StateCode = v
	}
	if v := query.Get("fin_year"); v != "" {
		cctx.FinYear = v
	}
	return cctx
}

// Run walks every configured state URL and returns the accumulated records
// in insertion order: state-list order, then table row order at each level.
// Fetch failures skip their subtree; the only error Run returns is context
// cancellation, in which case the partial record set is discarded.
func (c *Crawler) Run(ctx context.Context) ([]models.PanchayatRecord, Stats, error) {
	runLog := c.log.WithField("run_id", uuid.NewString()[:8])
	runLog.Infof("Starting crawl of %d state(s)", len(c.cfg.StateURLs))

	var allRecords []models.PanchayatRecord
	var stats Stats

	for _, stateURL := range c.cfg.StateURLs {
		if err := ctx.Err(); err != nil {
			runLog.Warnf("Crawl cancelled, discarding %d collected record(s)", len(allRecords))
			return nil, stats, err
		}

		cctx := ContextFromURL(stateURL)
		stateLog := runLog.WithField("state", cctx.State)
		stateLog.Infof("Processing state: %s", cctx.State)

		stateDoc, err := c.fetcher.FetchDocument(ctx, stateURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				runLog.Warnf("Crawl cancelled, discarding %d collected record(s)", len(allRecords))
				return nil, stats, ctxErr
			}
			stateLog.WithField("error_category", utils.CategorizeError(err)).
				Warnf("Failed to fetch state page, skipping state: %v", err)
			stats.StatesFailed++
			continue
		}
		stats.StatesProcessed++

		districtLinks := extract.Links(stateDoc, c.baseURL)
		stats.DistrictsFound += len(districtLinks)
		stateLog.Infof("Found %d district(s) in %s", len(districtLinks), cctx.State)

		records, err := c.crawlDistricts(ctx, cctx, districtLinks, stateLog, &stats)
		if err != nil {
			runLog.Warnf("Crawl cancelled, discarding %d collected record(s)", len(allRecords))
			return nil, stats, err
		}
		allRecords = append(allRecords, records...)
	}

	stats.RecordsCollected = len(allRecords)
	c.logSummary(runLog, stats)
	return allRecords, stats, nil
}

// crawlDistricts processes every district of one state. A failed district
// fetch skips that district only; siblings continue.
func (c *Crawler) crawlDistricts(ctx context.Context, cctx models.CrawlContext, districts []models.Link, stateLog *logrus.Entry, stats *Stats) ([]models.PanchayatRecord, error) {
	var records []models.PanchayatRecord

	for _, district := range districts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		districtLog := stateLog.WithField("district", district.Name)
		districtLog.Infof("Processing district: %s in %s", district.Name, cctx.State)

		districtDoc, err := c.fetcher.FetchDocument(ctx, district.URL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			districtLog.WithField("error_category", utils.CategorizeError(err)).
				Warnf("Skipping district %s due to fetch error: %v", district.Name, err)
			stats.DistrictsFailed++
			continue
		}

		blockLinks := extract.Links(districtDoc, c.baseURL)
		stats.BlocksFound += len(blockLinks)
		districtLog.Infof("Found %d block(s) in %s", len(blockLinks), district.Name)

		blockRecords, err := c.crawlBlocks(ctx, cctx, district.Name, blockLinks, districtLog, stats)
		if err != nil {
			return nil, err
		}
		records = append(records, blockRecords...)
	}
	return records, nil
}

// crawlBlocks fetches every block page of one district and extracts its
// panchayat rows.
func (c *Crawler) crawlBlocks(ctx context.Context, cctx models.CrawlContext, district string, blocks []models.Link, districtLog *logrus.Entry, stats *Stats) ([]models.PanchayatRecord, error) {
	var records []models.PanchayatRecord

	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		blockLog := districtLog.WithField("block", block.Name)
		blockLog.Infof("Processing block: %s in %s, %s", block.Name, district, cctx.State)

		blockDoc, err := c.fetcher.FetchDocument(ctx, block.URL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			blockLog.WithField("error_category", utils.CategorizeError(err)).
				Warnf("Skipping block %s due to fetch error: %v", block.Name, err)
			stats.BlocksFailed++
			continue
		}

		panchayatRecords := extract.PanchayatData(blockDoc, cctx, district, block.Name)
		records = append(records, panchayatRecords...)
		blockLog.Infof("Collected data for %d panchayat(s) in %s", len(panchayatRecords), block.Name)
	}
	return records, nil
}

// logSummary logs the end-of-run totals.
func (c *Crawler) logSummary(runLog *logrus.Entry, stats Stats) {
	runLog.Info("============================================")
	runLog.Infof("Crawl complete: %d state(s) processed, %d failed", stats.StatesProcessed, stats.StatesFailed)
	runLog.Infof("Districts: %d found, %d failed | Blocks: %d found, %d failed",
		stats.DistrictsFound, stats.DistrictsFailed, stats.BlocksFound, stats.BlocksFailed)
	runLog.Infof("Records collected: %d", stats.RecordsCollected)
	runLog.Info("============================================")
}
