package config

import "time"

// AppConfig holds the full application configuration for a crawl run.
// It is loaded once from YAML and passed explicitly to every component;
// there is no process-global configuration state.
type AppConfig struct {
	// BaseURL is used to resolve the relative hrefs found in directory tables.
	BaseURL string `yaml:"base_url"`
	// StateURLs is the externally supplied list of top-level state pages.
	// Each URL is expected to carry state_name, state_code and fin_year
	// query parameters.
	StateURLs []string `yaml:"state_urls"`
	// OutputPath is the CSV file written once at the end of the run.
	OutputPath string `yaml:"output_path,omitempty"`
	// RequestDelay is the minimum spacing between any two HTTP requests.
	RequestDelay time.Duration `yaml:"request_delay,omitempty"`
	// RespectRobots enables robots.txt checks before each fetch.
	RespectRobots bool `yaml:"respect_robots,omitempty"`

	HTTPClientSettings HTTPClientConfig `yaml:"http_client_settings,omitempty"`
	Cache              CacheConfig      `yaml:"cache,omitempty"`
}

// CacheConfig controls the optional on-disk page cache. Disabled by default;
// when disabled every fetch goes to the network.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled,omitempty"`
	Dir     string        `yaml:"dir,omitempty"`
	TTL     time.Duration `yaml:"ttl,omitempty"`
}

// HTTPClientConfig holds settings for the shared HTTP client
type HTTPClientConfig struct {
	Timeout               time.Duration `yaml:"timeout,omitempty"`                 // Overall request timeout
	MaxIdleConns          int           `yaml:"max_idle_conns,omitempty"`          // Max total idle connections
	MaxIdleConnsPerHost   int           `yaml:"max_idle_conns_per_host,omitempty"` // Max idle connections per host
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout,omitempty"`       // Timeout for idle connections
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout,omitempty"`   // Timeout for TLS handshake
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout,omitempty"` // Timeout for 100-continue
	ForceAttemptHTTP2     *bool         `yaml:"force_attempt_http2,omitempty"`     // nil=default, true=force, false=disable
	DialerTimeout         time.Duration `yaml:"dialer_timeout,omitempty"`          // Connection dial timeout
	DialerKeepAlive       time.Duration `yaml:"dialer_keep_alive,omitempty"`       // TCP keep-alive interval
}
