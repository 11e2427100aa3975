package dom

import (
	"context"
	"log"
	"strings"
)

// Stats counts cache activity for an Engine.
type Stats struct {
	Hits   int
	Misses int
}

// Engine resolves ordered XPath selector lists against a page. The first
// selector that yields an element wins, and the winning element is cached
// under the full selector list so repeated lookups skip the page entirely.
// A cached element that has detached from the document is evicted and the
// lookup re-runs.
//
// Engine never propagates selector failures to the caller: a selector that
// fails to compile or evaluate is logged and the next one is tried.
type Engine struct {
	page  Page
	cache map[string]Element
	stats Stats
}

func NewEngine(page Page) *Engine {
	return &Engine{page: page, cache: make(map[string]Element)}
}

func cacheKey(selectors []string) string {
	return strings.Join(selectors, "\n")
}

// FindElement returns the first element matched by the selector list, or nil
// when none of the selectors match anything.
func (e *Engine) FindElement(ctx context.Context, selectors []string) Element {
	key := cacheKey(selectors)
	if el, ok := e.cache[key]; ok {
		if el.Attached(ctx) {
			e.stats.Hits++
			return el
		}
		delete(e.cache, key)
	}
	e.stats.Misses++

	for _, sel := range selectors {
		els, err := e.page.Query(ctx, sel)
		if err != nil {
			log.Printf("[DOM] selector failed, skipping: %q: %v", sel, err)
			continue
		}
		if len(els) > 0 {
			e.cache[key] = els[0]
			return els[0]
		}
	}
	return nil
}

// FindElements returns every element matched by any selector in the list,
// deduplicated by handle identity, in selector order. Results are not
// cached.
func (e *Engine) FindElements(ctx context.Context, selectors []string) []Element {
	var out []Element
	seen := make(map[Element]bool)
	for _, sel := range selectors {
		els, err := e.page.Query(ctx, sel)
		if err != nil {
			log.Printf("[DOM] selector failed, skipping: %q: %v", sel, err)
			continue
		}
		for _, el := range els {
			if !seen[el] {
				seen[el] = true
				out = append(out, el)
			}
		}
	}
	return out
}

// ClearCache drops every cached element. Call it after a page transition so
// stale handles from the previous page cannot be served.
func (e *Engine) ClearCache() {
	e.cache = make(map[string]Element)
}

func (e *Engine) Stats() Stats {
	return e.stats
}
