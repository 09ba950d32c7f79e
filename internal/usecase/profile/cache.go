package profile

import (
	"container/list"
	"time"

	"tradeaskill/internal/domain/user"
)

const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 30 * time.Minute
)

type cacheEntry struct {
	sessionID string
	profile   user.Profile
	expires   time.Time
}

// profileCache is a size and age bounded LRU of session profiles. It is not
// safe for concurrent use; Store guards it with its mutex.
type profileCache struct {
	max   int
	ttl   time.Duration
	now   func() time.Time
	order *list.List
	items map[string]*list.Element
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &profileCache{
		max:   size,
		ttl:   ttl,
		now:   time.Now,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

func (c *profileCache) get(sessionID string) (user.Profile, bool) {
	el, ok := c.items[sessionID]
	if !ok {
		return user.Profile{}, false
	}
	e := el.Value.(*cacheEntry)
	if !c.now().Before(e.expires) {
		c.removeElement(el)
		return user.Profile{}, false
	}
	c.order.MoveToFront(el)
	return e.profile, true
}

func (c *profileCache) put(sessionID string, p user.Profile) {
	expires := c.now().Add(c.ttl)
	if el, ok := c.items[sessionID]; ok {
		e := el.Value.(*cacheEntry)
		e.profile = p
		e.expires = expires
		c.order.MoveToFront(el)
		return
	}
	c.items[sessionID] = c.order.PushFront(&cacheEntry{sessionID: sessionID, profile: p, expires: expires})
	for c.order.Len() > c.max {
		c.removeElement(c.order.Back())
	}
}

func (c *profileCache) remove(sessionID string) {
	if el, ok := c.items[sessionID]; ok {
		c.removeElement(el)
	}
}

func (c *profileCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).sessionID)
}

func (c *profileCache) len() int { return c.order.Len() }
