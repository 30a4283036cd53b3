package storage

// PageCache stores fetched page bodies keyed by URL so repeated runs against
// a slow source can skip the network. Implementations must be safe to call
// from the single crawl goroutine; entries may expire at any time.
type PageCache interface {
	// Get returns the cached body for url, or found=false on miss/expiry.
	Get(url string) (body []byte, found bool)
	// Set stores the body for url, subject to the cache's TTL.
	Set(url string, body []byte) error
	// Close releases underlying resources.
	Close() error
}
