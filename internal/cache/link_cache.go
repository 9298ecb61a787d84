package cache

import (
	"time"

	"github.com/metaquant/engel-landing/pkg/logger"
	"github.com/metaquant/engel-landing/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const linkCacheName = "download_links"

// Link is a presigned download URL and the moment it stops working
type Link struct {
	URL       string
	ExpiresAt time.Time
}

// LinkCache keeps presigned links for a fraction of their lifetime so bursts of
// clicks on the download button share one signature
type LinkCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewLinkCache creates a cache that keeps links for half of linkTTL
func NewLinkCache(linkTTL time.Duration) *LinkCache {
	ttl := linkTTL / 2
	return &LinkCache{
		cache: gocache.New(ttl, linkTTL),
		ttl:   ttl,
	}
}

// Get returns the cached link for key if it is still usable
func (lc *LinkCache) Get(key string) (Link, bool) {
	data, found := lc.cache.Get(key)
	if !found {
		metrics.CacheMisses.WithLabelValues(linkCacheName).Inc()
		return Link{}, false
	}

	link, ok := data.(Link)
	if !ok {
		logger.Error("Invalid download link cache data type", zap.String("key", key))
		lc.cache.Delete(key)
		metrics.CacheMisses.WithLabelValues(linkCacheName).Inc()
		return Link{}, false
	}

	metrics.CacheHits.WithLabelValues(linkCacheName).Inc()
	return link, true
}

// Set stores link under key
func (lc *LinkCache) Set(key string, link Link) {
	lc.cache.Set(key, link, lc.ttl)
}
