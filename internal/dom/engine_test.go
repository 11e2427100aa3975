package dom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const formHTML = `<html><body>
<form>
<input id="first_name" name="first_name" type="text">
<input id="email" name="email" type="email">
<input type="hidden" name="token">
<select id="state" name="state">
<option value="CO">Colorado</option>
<option value="NY">New York</option>
</select>
</form>
</body></html>`

func newTestSnapshot(t *testing.T, src string) *Snapshot {
	t.Helper()
	snap, err := NewSnapshot(src)
	require.NoError(t, err)
	return snap
}

func TestFindElement_SelectorPriority(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	// The first selector that matches wins even when later ones also match
	el := engine.FindElement(ctx, []string{
		`//input[@id="email"]`,
		`//input[@id="first_name"]`,
	})
	require.NotNil(t, el)
	assert.Equal(t, "email", el.ID())
}

func TestFindElement_FallsThroughToLaterSelector(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	el := engine.FindElement(ctx, []string{
		`//input[@id="does_not_exist"]`,
		`//input[@id="first_name"]`,
	})
	require.NotNil(t, el)
	assert.Equal(t, "first_name", el.ID())
}

func TestFindElement_NoMatch(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	el := engine.FindElement(ctx, []string{`//input[@id="missing"]`})
	assert.Nil(t, el)
}

func TestFindElement_MalformedSelectorSkipped(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	// The broken selector is logged and skipped, not fatal
	el := engine.FindElement(ctx, []string{
		`//input[@id=`,
		`//input[@id="email"]`,
	})
	require.NotNil(t, el)
	assert.Equal(t, "email", el.ID())
}

func TestFindElement_CacheHit(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	selectors := []string{`//input[@id="email"]`}
	first := engine.FindElement(ctx, selectors)
	second := engine.FindElement(ctx, selectors)

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, engine.Stats())
}

func TestFindElement_StaleCacheEvicted(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	selectors := []string{`//input[@id="email"]`}
	first := engine.FindElement(ctx, selectors)
	require.NotNil(t, first)

	// Swapping the document detaches the cached handle
	require.NoError(t, snap.Replace(formHTML))
	assert.False(t, first.Attached(ctx))

	second := engine.FindElement(ctx, selectors)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.True(t, second.Attached(ctx))
	assert.Equal(t, Stats{Hits: 0, Misses: 2}, engine.Stats())
}

func TestFindElement_ClearCache(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	selectors := []string{`//input[@id="email"]`}
	engine.FindElement(ctx, selectors)
	engine.ClearCache()
	engine.FindElement(ctx, selectors)

	assert.Equal(t, Stats{Hits: 0, Misses: 2}, engine.Stats())
}

func TestFindElements_Dedupes(t *testing.T) {
	ctx := context.Background()
	snap := newTestSnapshot(t, formHTML)
	engine := NewEngine(snap)

	els := engine.FindElements(ctx, []string{
		`//input[@id="email"]`,
		`//input[@name="email"]`,
		`//input[@id="first_name"]`,
	})

	require.Len(t, els, 2)
	assert.Equal(t, "email", els[0].ID())
	assert.Equal(t, "first_name", els[1].ID())
}
