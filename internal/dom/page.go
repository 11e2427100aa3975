// Package dom defines the element and page abstractions the fill pipeline
// runs against, plus a selector engine with first-match caching. Pages come
// in two flavors: a live chromedp-backed page and an in-memory snapshot
// parsed with htmlquery.
package dom

import (
	"context"
	"errors"
)

// ErrReactiveUnsupported is returned by SetValueReactive when the backing
// page cannot drive framework-managed inputs.
var ErrReactiveUnsupported = errors.New("reactive value setting not supported by this page")

// Option is a single choice inside a select element.
type Option struct {
	Value string
	Label string
}

// Element is a handle to a single node on a page. Handles can go stale when
// the page re-renders; Attached reports whether the node is still part of
// the document.
type Element interface {
	// ID returns a stable identifier for logging, derived from the id or
	// name attribute when present.
	ID() string
	// Tag returns the lowercase tag name.
	Tag() string
	// Attr returns the named attribute, or "" when absent.
	Attr(name string) string

	Attached(ctx context.Context) bool
	Visible(ctx context.Context) (bool, error)

	Value(ctx context.Context) (string, error)
	// SetValue writes the value the way a keyboard user would and fires
	// input and change events.
	SetValue(ctx context.Context, value string) error
	// SetValueReactive writes through the element prototype's value setter
	// so framework-controlled inputs observe the change.
	SetValueReactive(ctx context.Context, value string) error

	Options(ctx context.Context) ([]Option, error)
	SelectOption(ctx context.Context, value string) error
	Checked(ctx context.Context) (bool, error)
	SetChecked(ctx context.Context, checked bool) error
	Click(ctx context.Context) error
}

// Page is a queryable document. Query evaluates an XPath expression and
// returns every matching element in document order. A malformed expression
// returns an error rather than a panic.
type Page interface {
	Query(ctx context.Context, expr string) ([]Element, error)
}
