// Package navigator walks a multi-page application form: it detects the
// fillable fields on each page, fills them from the profile, advances
// through "next" affordances, and aggregates one result for the whole
// session. It never submits on its own; Submit is a separate, explicit call.
package navigator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/dom"
	"github.com/jonathan/autofill-engine/internal/filler"
	"github.com/jonathan/autofill-engine/internal/profile"
	"github.com/jonathan/autofill-engine/internal/types"
)

// DefaultMaxPages is the hard ceiling on pages traversed in one session.
const DefaultMaxPages = 10

// Options tunes a fill session.
type Options struct {
	// MaxPages caps traversal; zero means DefaultMaxPages.
	MaxPages int
	// FieldDelay is an optional pause between field writes, for sites that
	// debounce validation.
	FieldDelay time.Duration
	// Verify re-reads every written value and counts mismatches as failures.
	Verify  bool
	Verbose bool
}

// Navigator binds a detected adapter and a user profile to a live page.
type Navigator struct {
	page    dom.Page
	engine  *dom.Engine
	adapter *ats.Adapter
	profile *types.UserProfile
	opts    Options
}

func New(page dom.Page, adapter *ats.Adapter, p *types.UserProfile, opts Options) *Navigator {
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	return &Navigator{
		page:    page,
		engine:  dom.NewEngine(page),
		adapter: adapter,
		profile: p,
		opts:    opts,
	}
}

// DetectVisibleFields returns the adapter fields present and visible on the
// current page, in deterministic order. Control fields are excluded.
func (n *Navigator) DetectVisibleFields(ctx context.Context) []ats.Field {
	var out []ats.Field
	for _, field := range profile.Fields() {
		selectors, ok := n.adapter.Selectors[field]
		if !ok {
			continue
		}
		el := n.engine.FindElement(ctx, selectors)
		if el == nil {
			continue
		}
		visible, err := el.Visible(ctx)
		if err != nil || !visible {
			continue
		}
		out = append(out, field)
	}
	return out
}

// HasNextPage reports whether the current page shows a "next" affordance
// without a submit affordance. A page offering both is a final page; the
// submit wins and traversal stops.
func (n *Navigator) HasNextPage(ctx context.Context) bool {
	if !n.adapter.Config.MultiPage {
		return false
	}
	next := n.visibleControl(ctx, ats.FieldNextButton)
	if next == nil {
		return false
	}
	return n.visibleControl(ctx, ats.FieldSubmitButton) == nil
}

func (n *Navigator) visibleControl(ctx context.Context, field ats.Field) dom.Element {
	selectors, ok := n.adapter.Selectors[field]
	if !ok {
		return nil
	}
	el := n.engine.FindElement(ctx, selectors)
	if el == nil {
		return nil
	}
	if visible, err := el.Visible(ctx); err != nil || !visible {
		return nil
	}
	return el
}

// GoToNextPage clicks the next affordance, waits out the adapter's load
// delay, and drops the selector cache so stale handles from the previous
// page cannot be served.
func (n *Navigator) GoToNextPage(ctx context.Context) error {
	next := n.visibleControl(ctx, ats.FieldNextButton)
	if next == nil {
		return fmt.Errorf("no next affordance on current page")
	}
	if err := next.Click(ctx); err != nil {
		return fmt.Errorf("advancing to next page: %w", err)
	}
	if err := wait(ctx, n.adapter.Config.WaitForLoad); err != nil {
		return err
	}
	n.engine.ClearCache()
	return nil
}

// Submit clicks the submit affordance. Callers invoke it explicitly after
// reviewing the session result; Run never calls it.
func (n *Navigator) Submit(ctx context.Context) error {
	submit := n.visibleControl(ctx, ats.FieldSubmitButton)
	if submit == nil {
		return fmt.Errorf("no submit affordance on current page")
	}
	if err := submit.Click(ctx); err != nil {
		return fmt.Errorf("submitting application: %w", err)
	}
	return nil
}

// Run fills every page of the form, advancing until no next affordance
// remains or the page ceiling is hit. The returned result is always
// non-nil; a ceiling stop is reported through CeilingReached rather than
// an error so partial progress is preserved.
func (n *Navigator) Run(ctx context.Context) (*types.FillSessionResult, error) {
	result := &types.FillSessionResult{SessionID: uuid.NewString()}

	for {
		result.Pages++
		if n.opts.Verbose {
			log.Printf("[NAV] Filling page %d", result.Pages)
		}
		if err := n.fillPage(ctx, result); err != nil {
			return result, err
		}

		if !n.HasNextPage(ctx) {
			return result, nil
		}
		if result.Pages >= n.opts.MaxPages {
			log.Printf("[NAV] page ceiling reached after %d pages, stopping", result.Pages)
			result.CeilingReached = true
			return result, nil
		}
		if err := n.GoToNextPage(ctx); err != nil {
			return result, err
		}
	}
}

func (n *Navigator) fillPage(ctx context.Context, result *types.FillSessionResult) error {
	opts := filler.Options{Method: n.adapter.Config.Method, Verify: n.opts.Verify}

	for _, field := range n.DetectVisibleFields(ctx) {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.TotalFields++

		value := profile.Resolve(n.profile, field)
		if value == "" {
			result.SkippedFields = append(result.SkippedFields, string(field))
			continue
		}

		el := n.engine.FindElement(ctx, n.adapter.Selectors[field])
		if el == nil {
			result.SkippedFields = append(result.SkippedFields, string(field))
			continue
		}

		if err := filler.Fill(ctx, el, value, opts); err != nil {
			log.Printf("[NAV] fill failed for %s: %v", field, err)
			result.FailedFields = append(result.FailedFields, string(field))
			continue
		}
		result.FilledFields++

		if n.opts.FieldDelay > 0 {
			if err := wait(ctx, n.opts.FieldDelay); err != nil {
				return err
			}
		}
	}
	return nil
}

// wait sleeps for d unless the context is canceled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
