package lookup

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// matchCache remembers resolved exact matches by pattern key. Only the
// resolved chord name is cached, never a match object; hits re-resolve the
// identity from the store so the cache can be cleared at any time without
// affecting correctness. The underlying LRU is internally locked, so a
// shared engine may be used from multiple goroutines.
type matchCache struct {
	names *lru.Cache[string, string]
}

const defaultCacheSize = 1024

func newMatchCache(size int) *matchCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		// lru.New only fails on size <= 0, which is handled above
		panic(err)
	}
	return &matchCache{names: c}
}

func (mc *matchCache) get(key string) (string, bool) {
	return mc.names.Get(key)
}

func (mc *matchCache) put(key, name string) {
	mc.names.Add(key, name)
}

func (mc *matchCache) clear() {
	mc.names.Purge()
}

func (mc *matchCache) len() int {
	return mc.names.Len()
}
