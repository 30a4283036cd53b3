package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"panchayat-scraper/pkg/storage"
	"panchayat-scraper/pkg/utils"
)

// Fetcher retrieves a URL and parses the body into a goquery document.
// Failure is reported through the returned error, never through a nil
// sentinel document; callers decide whether to skip the affected subtree.
type Fetcher struct {
	client      *http.Client
	rateLimiter *RateLimiter
	cache       storage.PageCache // nil disables caching
	robots      *RobotsHandler    // nil disables robots.txt checks
	log         *logrus.Entry
}

// NewFetcher creates a Fetcher. cache and robots may be nil, in which case
// every fetch goes straight to the network without a politeness check.
func NewFetcher(client *http.Client, rateLimiter *RateLimiter, cache storage.PageCache, robots *RobotsHandler, log *logrus.Entry) *Fetcher {
	return &Fetcher{
		client:      client,
		rateLimiter: rateLimiter,
		cache:       cache,
		robots:      robots,
		log:         log,
	}
}

// FetchDocument performs a blocking GET of rawURL and parses the response
// into a goquery document. The rate limiter guarantees a fixed spacing from
// the previous request to the same host, applied whether or not that request
// succeeded. A cache hit bypasses both the network and the delay.
func (f *Fetcher) FetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	reqLog := f.log.WithField("url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL %q: %v", utils.ErrParsing, rawURL, err)
	}

	if f.robots != nil && !f.robots.Allowed(ctx, parsedURL) {
		reqLog.Warn("URL disallowed by robots.txt")
		return nil, fmt.Errorf("%w: %s", utils.ErrRobotsDisallowed, rawURL)
	}

	if f.cache != nil {
		if body, found := f.cache.Get(rawURL); found {
			doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(body))
			if parseErr == nil {
				reqLog.Debug("Served document from page cache")
				return doc, nil
			}
			reqLog.Warnf("Cached body failed to parse, refetching: %v", parseErr)
		}
	}

	host := parsedURL.Hostname()
	f.rateLimiter.Wait(host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRequestCreation, err)
	}

	resp, err := f.client.Do(req)
	f.rateLimiter.UpdateLastRequestTime(host) // Unconditional: failed attempts still count
	if err != nil {
		reqLog.Errorf("Network error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqLog.WithFields(logrus.Fields{"status_code": resp.StatusCode, "status": resp.Status}).
			Warn("Non-success HTTP status")
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d %s", utils.ErrHTTPStatus, resp.StatusCode, resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		reqLog.Errorf("Error reading response body: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrResponseBodyRead, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(bodyBytes))
	if err != nil {
		reqLog.Errorf("Error parsing HTML: %v", err)
		return nil, fmt.Errorf("%w: HTML parse failed: %v", utils.ErrParsing, err)
	}
	reqLog.Debug("Successfully fetched and parsed document")

	if f.cache != nil {
		if cacheErr := f.cache.Set(rawURL, bodyBytes); cacheErr != nil {
			reqLog.Warnf("Failed to cache page body: %v", cacheErr)
		}
	}

	return doc, nil
}
