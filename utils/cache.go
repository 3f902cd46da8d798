package utils

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Public responses are cached read-through with a short TTL. Admin
// mutations flush the whole cache; entries are few and rebuilding them
// is one query each.
var responseCache = cache.New(time.Minute, 5*time.Minute)

// GetCached returns the cached value for key, computing and storing it
// through fetchFunc on a miss
func GetCached(key string, fetchFunc func() (interface{}, error)) (interface{}, error) {
	if data, found := responseCache.Get(key); found {
		return data, nil
	}

	data, err := fetchFunc()
	if err != nil {
		return nil, err
	}

	responseCache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// FlushCache drops every cached public response
func FlushCache() {
	responseCache.Flush()
}
