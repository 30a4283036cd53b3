package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panchayat-scraper/pkg/utils"
)

func containsWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestAppConfig_Validate_Defaults(t *testing.T) {
	cfg := AppConfig{
		BaseURL:   "https://example.gov.in/netnrega/",
		StateURLs: []string{"https://example.gov.in/state.aspx?state_name=X"},
	}
	warnings, err := cfg.Validate()

	require.NoError(t, err)

	assert.Equal(t, "./panchayat_data.csv", cfg.OutputPath)
	assert.Equal(t, 1*time.Second, cfg.RequestDelay)

	// HTTP client defaults
	assert.Equal(t, 45*time.Second, cfg.HTTPClientSettings.Timeout)
	assert.Equal(t, 100, cfg.HTTPClientSettings.MaxIdleConns)
	assert.Equal(t, 2, cfg.HTTPClientSettings.MaxIdleConnsPerHost)
	assert.Equal(t, 90*time.Second, cfg.HTTPClientSettings.IdleConnTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientSettings.TLSHandshakeTimeout)
	assert.Equal(t, 1*time.Second, cfg.HTTPClientSettings.ExpectContinueTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTPClientSettings.DialerTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientSettings.DialerKeepAlive)

	assert.True(t, containsWarning(warnings, "output_path is empty"))
}

func TestAppConfig_Validate_MissingBaseURL(t *testing.T) {
	cfg := AppConfig{}
	_, err := cfg.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrConfigValidation)
}

func TestAppConfig_Validate_RelativeBaseURL(t *testing.T) {
	cfg := AppConfig{BaseURL: "put/your/base/url/here"}
	_, err := cfg.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrConfigValidation)
}

func TestAppConfig_Validate_EmptyStateURLs(t *testing.T) {
	cfg := AppConfig{BaseURL: "https://example.gov.in/"}
	warnings, err := cfg.Validate()

	require.NoError(t, err)
	assert.True(t, containsWarning(warnings, "state_urls is empty"))
}

func TestAppConfig_Validate_NegativeDelay(t *testing.T) {
	cfg := AppConfig{
		BaseURL:      "https://example.gov.in/",
		RequestDelay: -5 * time.Second,
	}
	warnings, err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, 1*time.Second, cfg.RequestDelay)
	assert.True(t, containsWarning(warnings, "request_delay cannot be negative"))
}

func TestAppConfig_Validate_CacheDefaults(t *testing.T) {
	cfg := AppConfig{
		BaseURL: "https://example.gov.in/",
		Cache:   CacheConfig{Enabled: true},
	}
	warnings, err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, "./page_cache", cfg.Cache.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.True(t, containsWarning(warnings, "cache.dir is empty"))
}

func TestAppConfig_Validate_CacheDisabledNoDefaults(t *testing.T) {
	cfg := AppConfig{BaseURL: "https://example.gov.in/"}
	_, err := cfg.Validate()

	require.NoError(t, err)
	assert.Empty(t, cfg.Cache.Dir)
	assert.Zero(t, cfg.Cache.TTL)
}

func TestAppConfig_Validate_PreservesExplicitValues(t *testing.T) {
	cfg := AppConfig{
		BaseURL:      "https://example.gov.in/",
		StateURLs:    []string{"https://example.gov.in/state.aspx?state_code=09"},
		OutputPath:   "/data/out.csv",
		RequestDelay: 3 * time.Second,
		HTTPClientSettings: HTTPClientConfig{
			Timeout:      30 * time.Second,
			MaxIdleConns: 50,
		},
	}
	warnings, err := cfg.Validate()

	require.NoError(t, err)
	assert.False(t, containsWarning(warnings, "output_path"))
	assert.Equal(t, "/data/out.csv", cfg.OutputPath)
	assert.Equal(t, 3*time.Second, cfg.RequestDelay)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientSettings.Timeout)
	assert.Equal(t, 50, cfg.HTTPClientSettings.MaxIdleConns)
}
