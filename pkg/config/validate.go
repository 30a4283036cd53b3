package config

import (
	"fmt"
	"net/url"
	"time"

	"panchayat-scraper/pkg/utils"
)

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// BaseURL is required: every extracted href is resolved against it
	if c.BaseURL == "" {
		return nil, fmt.Errorf("%w: base_url is required", utils.ErrConfigValidation)
	}
	base, parseErr := url.Parse(c.BaseURL)
	if parseErr != nil || !base.IsAbs() {
		return nil, fmt.Errorf("%w: base_url %q is not an absolute URL", utils.ErrConfigValidation, c.BaseURL)
	}

	// StateURLs: an empty list is a valid (if pointless) run
	if len(c.StateURLs) == 0 {
		warnings = append(warnings, "state_urls is empty, the crawl will collect nothing")
	}
	for _, s := range c.StateURLs {
		if _, urlErr := url.Parse(s); urlErr != nil {
			return nil, fmt.Errorf("%w: state URL %q is not parseable: %v", utils.ErrConfigValidation, s, urlErr)
		}
	}

	// OutputPath
	if c.OutputPath == "" {
		warnings = append(warnings, "output_path is empty, defaulting to './panchayat_data.csv'")
		c.OutputPath = "./panchayat_data.csv"
	}

	// RequestDelay
	if c.RequestDelay < 0 {
		warnings = append(warnings, "request_delay cannot be negative, defaulting to 1s")
		c.RequestDelay = time.Second
	}
	if c.RequestDelay == 0 {
		c.RequestDelay = time.Second
	}

	// Cache defaults (only relevant when enabled)
	if c.Cache.Enabled {
		if c.Cache.Dir == "" {
			warnings = append(warnings, "cache.dir is empty, defaulting to './page_cache'")
			c.Cache.Dir = "./page_cache"
		}
		if c.Cache.TTL <= 0 {
			c.Cache.TTL = 24 * time.Hour
		}
	}

	c.validateHTTPClientSettings()

	return warnings, nil
}

// validateHTTPClientSettings applies defaults to HTTP client settings.
func (c *AppConfig) validateHTTPClientSettings() {
	h := &c.HTTPClientSettings
	if h.Timeout <= 0 {
		h.Timeout = 45 * time.Second
	}
	if h.MaxIdleConns <= 0 {
		h.MaxIdleConns = 100
	}
	if h.MaxIdleConnsPerHost <= 0 {
		h.MaxIdleConnsPerHost = 2
	}
	if h.IdleConnTimeout <= 0 {
		h.IdleConnTimeout = 90 * time.Second
	}
	if h.TLSHandshakeTimeout <= 0 {
		h.TLSHandshakeTimeout = 10 * time.Second
	}
	if h.ExpectContinueTimeout <= 0 {
		h.ExpectContinueTimeout = 1 * time.Second
	}
	if h.DialerTimeout <= 0 {
		h.DialerTimeout = 15 * time.Second
	}
	if h.DialerKeepAlive <= 0 {
		h.DialerKeepAlive = 30 * time.Second
	}
}
