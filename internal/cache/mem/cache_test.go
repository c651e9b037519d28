package mem

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/volunteerhub/internal/domain"
)

func TestCache(t *testing.T) {
	c := New()

	_, gen, ok := c.Fetch()
	require.False(t, ok)

	opportunities := []domain.Opportunity{{
		ID:             uuid.New(),
		Title:          "Tutor",
		SkillsRequired: []string{"math"},
		Keywords:       []string{"tutor"},
	}}
	require.True(t, c.Commit(gen, opportunities))

	got, _, ok := c.Fetch()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Tutor", got[0].Title)

	got[0].SkillsRequired[0] = "changed"
	opportunities[0].Keywords[0] = "changed"
	again, _, _ := c.Fetch()
	assert.Equal(t, []string{"math"}, again[0].SkillsRequired)
	assert.Equal(t, []string{"tutor"}, again[0].Keywords)

	c.Invalidate()
	_, _, ok = c.Fetch()
	assert.False(t, ok)
}

func TestCacheStaleCommit(t *testing.T) {
	c := New()

	_, gen, _ := c.Fetch()
	c.Invalidate()
	assert.False(t, c.Commit(gen, []domain.Opportunity{{Title: "stale"}}))
	_, gen, ok := c.Fetch()
	assert.False(t, ok)

	assert.True(t, c.Commit(gen, []domain.Opportunity{{Title: "fresh"}}))
	got, _, ok := c.Fetch()
	require.True(t, ok)
	assert.Equal(t, "fresh", got[0].Title)
}

func TestCacheConcurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, gen, ok := c.Fetch()
				if !ok {
					c.Commit(gen, []domain.Opportunity{{Title: "x", Keywords: []string{"k"}}})
				}
				if j%10 == 0 {
					c.Invalidate()
				}
			}
		}()
	}
	wg.Wait()
}
