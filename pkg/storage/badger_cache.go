package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"panchayat-scraper/pkg/log"
	"panchayat-scraper/pkg/utils"
)

const pageKeyPrefix = "page:" // Prefix for page URL keys in DB

// BadgerCache implements PageCache on top of BadgerDB with per-entry TTL.
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
	log *logrus.Entry
}

// NewBadgerCache opens (or creates) the cache database at dir.
func NewBadgerCache(dir string, ttl time.Duration, logger *logrus.Entry) (*BadgerCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: cannot create cache directory %s: %v", utils.ErrCache, dir, err)
	}

	logger.Infof("Initializing page cache at: %s (TTL: %v)", dir, ttl)

	badgerLogger := log.NewBadgerLogrusAdapter(logger.WithField("component", "badgerdb"))
	opts := badger.DefaultOptions(dir).
		WithLogger(badgerLogger).
		WithNumVersionsToKeep(1) // Only the latest body per URL matters

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open cache database at %s: %v", utils.ErrCache, dir, err)
	}

	return &BadgerCache{db: db, ttl: ttl, log: logger}, nil
}

// Get returns the cached body for url. Expired or missing entries report a miss.
func (c *BadgerCache) Get(url string) ([]byte, bool) {
	var body []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(pageKeyPrefix + url))
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.log.Warnf("Page cache read for %s failed: %v", url, err)
		}
		return nil, false
	}
	c.log.WithField("url", url).Debug("Page cache hit")
	return body, true
}

// Set stores body under url with the cache TTL.
func (c *BadgerCache) Set(url string, body []byte) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(pageKeyPrefix+url), body).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to store %s: %v", utils.ErrCache, url, err)
	}
	return nil
}

// Close closes the underlying database.
func (c *BadgerCache) Close() error {
	c.log.Info("Closing page cache database.")
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("%w: failed to close cache database: %v", utils.ErrCache, err)
	}
	return nil
}
