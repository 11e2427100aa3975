package dom

import (
	"context"
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Event records a DOM event dispatched against a snapshot element.
type Event struct {
	TargetID string
	Type     string
}

// Snapshot is an in-memory Page backed by a parsed HTML document. Mutations
// are tracked in override maps rather than rewriting the tree, and every
// dispatched event is recorded so callers can assert on event sequences.
// Replace swaps the document for a new one, detaching every handle issued
// against the old tree.
type Snapshot struct {
	doc      *html.Node
	elements map[*html.Node]*snapshotElement
	values   map[*html.Node]string
	checked  map[*html.Node]bool
	events   []Event
	onClick  func(Element)
}

func NewSnapshot(src string) (*Snapshot, error) {
	doc, err := htmlquery.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Snapshot{
		doc:      doc,
		elements: make(map[*html.Node]*snapshotElement),
		values:   make(map[*html.Node]string),
		checked:  make(map[*html.Node]bool),
	}, nil
}

// Replace parses src and makes it the current document. Handles issued
// before the call report detached afterwards.
func (s *Snapshot) Replace(src string) error {
	doc, err := htmlquery.Parse(strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	s.doc = doc
	return nil
}

// SetClickHandler registers a callback invoked whenever Click fires on any
// element of the snapshot. Tests use it to simulate page transitions.
func (s *Snapshot) SetClickHandler(fn func(Element)) {
	s.onClick = fn
}

// DispatchedEvents returns every event fired so far, in order.
func (s *Snapshot) DispatchedEvents() []Event {
	return s.events
}

// ResetEvents clears the recorded event log.
func (s *Snapshot) ResetEvents() {
	s.events = nil
}

func (s *Snapshot) Query(_ context.Context, expr string) ([]Element, error) {
	exp, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling selector %q: %w", expr, err)
	}
	nodes := htmlquery.QuerySelectorAll(s.doc, exp)
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, s.element(n))
	}
	return out, nil
}

// element returns the one handle per node, so identity comparisons and
// override lookups stay stable across queries.
func (s *Snapshot) element(n *html.Node) *snapshotElement {
	if el, ok := s.elements[n]; ok {
		return el
	}
	el := &snapshotElement{snap: s, node: n}
	s.elements[n] = el
	return el
}

func (s *Snapshot) dispatch(el *snapshotElement, types ...string) {
	for _, t := range types {
		s.events = append(s.events, Event{TargetID: el.ID(), Type: t})
	}
}

type snapshotElement struct {
	snap *Snapshot
	node *html.Node
}

func (e *snapshotElement) ID() string {
	if id := htmlquery.SelectAttr(e.node, "id"); id != "" {
		return id
	}
	return htmlquery.SelectAttr(e.node, "name")
}

func (e *snapshotElement) Tag() string {
	return strings.ToLower(e.node.Data)
}

func (e *snapshotElement) Attr(name string) string {
	return htmlquery.SelectAttr(e.node, name)
}

func (e *snapshotElement) Attached(context.Context) bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.snap.doc {
			return true
		}
	}
	return false
}

func (e *snapshotElement) Visible(context.Context) (bool, error) {
	if strings.EqualFold(e.Attr("type"), "hidden") {
		return false, nil
	}
	if _, hidden := attrLookup(e.node, "hidden"); hidden {
		return false, nil
	}
	style := strings.ReplaceAll(strings.ToLower(e.Attr("style")), " ", "")
	if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
		return false, nil
	}
	return true, nil
}

func (e *snapshotElement) Value(context.Context) (string, error) {
	if v, ok := e.snap.values[e.node]; ok {
		return v, nil
	}
	switch e.Tag() {
	case "textarea":
		return strings.TrimSpace(htmlquery.InnerText(e.node)), nil
	case "select":
		var first string
		for i, opt := range e.optionNodes() {
			v := optionValue(opt)
			if i == 0 {
				first = v
			}
			if _, sel := attrLookup(opt, "selected"); sel {
				return v, nil
			}
		}
		return first, nil
	default:
		return e.Attr("value"), nil
	}
}

func (e *snapshotElement) SetValue(ctx context.Context, value string) error {
	if !e.Attached(ctx) {
		return fmt.Errorf("element %q is detached", e.ID())
	}
	e.snap.values[e.node] = value
	e.snap.dispatch(e, "input", "change")
	return nil
}

// SetValueReactive fails on a snapshot; there is no framework value setter
// to write through. Auto-method callers fall back to SetValue.
func (e *snapshotElement) SetValueReactive(context.Context, string) error {
	return ErrReactiveUnsupported
}

func (e *snapshotElement) Options(context.Context) ([]Option, error) {
	if e.Tag() != "select" {
		return nil, fmt.Errorf("element %q is a %s, not a select", e.ID(), e.Tag())
	}
	var out []Option
	for _, opt := range e.optionNodes() {
		out = append(out, Option{
			Value: optionValue(opt),
			Label: strings.TrimSpace(htmlquery.InnerText(opt)),
		})
	}
	return out, nil
}

func (e *snapshotElement) SelectOption(ctx context.Context, value string) error {
	if !e.Attached(ctx) {
		return fmt.Errorf("element %q is detached", e.ID())
	}
	e.snap.values[e.node] = value
	e.snap.dispatch(e, "input", "change")
	return nil
}

func (e *snapshotElement) SetChecked(ctx context.Context, checked bool) error {
	if !e.Attached(ctx) {
		return fmt.Errorf("element %q is detached", e.ID())
	}
	e.snap.checked[e.node] = checked
	e.snap.dispatch(e, "input", "change")
	return nil
}

// Checked reports the current checked state, honoring overrides first.
func (e *snapshotElement) Checked(context.Context) (bool, error) {
	if v, ok := e.snap.checked[e.node]; ok {
		return v, nil
	}
	_, ok := attrLookup(e.node, "checked")
	return ok, nil
}

func (e *snapshotElement) Click(ctx context.Context) error {
	if !e.Attached(ctx) {
		return fmt.Errorf("element %q is detached", e.ID())
	}
	e.snap.dispatch(e, "click")
	if e.snap.onClick != nil {
		e.snap.onClick(e)
	}
	return nil
}

func (e *snapshotElement) optionNodes() []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && strings.EqualFold(c.Data, "option") {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(e.node)
	return out
}

// optionValue mirrors HTML semantics: an option without a value attribute
// takes its text as the value.
func optionValue(n *html.Node) string {
	if v, ok := attrLookup(n, "value"); ok {
		return v
	}
	return strings.TrimSpace(htmlquery.InnerText(n))
}

func attrLookup(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}
