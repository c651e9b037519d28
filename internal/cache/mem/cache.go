package mem

import (
	"sync"

	"github.com/goserg/volunteerhub/internal/domain"
)

// Cache keeps the last committed set of open opportunities. It is filled only
// from storage and must be invalidated on every opportunity write.
type Cache struct {
	mu            sync.RWMutex
	generation    uint64
	valid         bool
	opportunities []domain.Opportunity
}

func New() *Cache {
	return &Cache{}
}

// Fetch returns the cached set, or the generation a reload has to be
// committed with when the cache is empty.
func (c *Cache) Fetch() ([]domain.Opportunity, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, c.generation, false
	}
	return clone(c.opportunities), c.generation, true
}

// Commit stores opportunities loaded at generation. A load that raced with an
// Invalidate is dropped.
func (c *Cache) Commit(generation uint64, opportunities []domain.Opportunity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}
	c.opportunities = clone(opportunities)
	c.valid = true
	return true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.opportunities = nil
	c.valid = false
}

func clone(opportunities []domain.Opportunity) []domain.Opportunity {
	out := make([]domain.Opportunity, len(opportunities))
	for i, o := range opportunities {
		o.SkillsRequired = append([]string(nil), o.SkillsRequired...)
		o.Keywords = append([]string(nil), o.Keywords...)
		out[i] = o
	}
	return out
}
