package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"
)

// robotsAgent is the product token checked against robots.txt rules.
const robotsAgent = "panchayat-scraper"

// RobotsHandler fetches, parses and caches robots.txt data per host.
// Its checks are opt-in; the crawler only consults it when configured to.
type RobotsHandler struct {
	client        *http.Client
	rateLimiter   *RateLimiter
	robotsCache   map[string]*robotstxt.RobotsData // hostname -> parsed data (or nil)
	robotsCacheMu sync.Mutex
	log           *logrus.Entry
}

// NewRobotsHandler creates a RobotsHandler sharing the crawl's HTTP client
// and rate limiter, so robots.txt fetches count against the same spacing.
func NewRobotsHandler(client *http.Client, rateLimiter *RateLimiter, log *logrus.Entry) *RobotsHandler {
	return &RobotsHandler{
		client:      client,
		rateLimiter: rateLimiter,
		robotsCache: make(map[string]*robotstxt.RobotsData),
		log:         log,
	}
}

// Allowed reports whether targetURL may be fetched under the host's
// robots.txt rules. Any failure to obtain or parse robots.txt is treated as
// "allowed"; missing rules never block the crawl.
func (rh *RobotsHandler) Allowed(ctx context.Context, targetURL *url.URL) bool {
	robotsData := rh.getRobotsData(ctx, targetURL)
	if robotsData == nil {
		return true
	}
	return robotsData.TestAgent(targetURL.RequestURI(), robotsAgent)
}

// getRobotsData retrieves robots.txt data for the targetURL's host, using
// the cache or fetching. Returns nil on any error/4xx/missing file, and
// caches that nil so the host is not re-fetched.
func (rh *RobotsHandler) getRobotsData(ctx context.Context, targetURL *url.URL) *robotstxt.RobotsData {
	host := targetURL.Hostname()

	rh.robotsCacheMu.Lock()
	robotsData, found := rh.robotsCache[host]
	rh.robotsCacheMu.Unlock()
	if found {
		return robotsData // Cached data, possibly nil
	}

	robotsURL := &url.URL{Scheme: targetURL.Scheme, Host: targetURL.Host, Path: "/robots.txt"}
	if robotsURL.Scheme != "http" && robotsURL.Scheme != "https" {
		robotsURL.Scheme = "https"
	}
	robotsLog := rh.log.WithFields(logrus.Fields{"host": host, "robots_url": robotsURL.String()})
	robotsLog.Info("Fetching robots.txt...") // Log only on cache miss

	data := rh.fetchAndParse(ctx, robotsURL.String(), host, robotsLog)

	rh.robotsCacheMu.Lock()
	rh.robotsCache[host] = data
	rh.robotsCacheMu.Unlock()
	return data
}

func (rh *RobotsHandler) fetchAndParse(ctx context.Context, robotsURL, host string, robotsLog *logrus.Entry) *robotstxt.RobotsData {
	rh.rateLimiter.Wait(host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		robotsLog.Errorf("Error creating robots.txt request: %v", err)
		return nil
	}

	resp, err := rh.client.Do(req)
	rh.rateLimiter.UpdateLastRequestTime(host) // Update time after the attempt
	if err != nil {
		robotsLog.Warnf("Fetching robots.txt failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		robotsLog.Infof("robots.txt returned status %d, treating as absent", resp.StatusCode)
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		robotsLog.Errorf("Error reading robots.txt body: %v", err)
		return nil
	}

	data, err := robotstxt.FromBytes(bodyBytes)
	if err != nil {
		robotsLog.Errorf("Error parsing robots.txt: %v", err)
		return nil
	}

	robotsLog.Info("Successfully fetched and parsed robots.txt")
	return data
}
