package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/cdp"
	cdpdom "github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/autofill-engine/internal/dom"
)

// page implements dom.Page against the live tab. XPath expressions are
// evaluated through the DevTools search API, which accepts the same selector
// grammar the adapters are written in.
type page struct {
	ctx context.Context
}

func (p *page) Query(ctx context.Context, expr string) ([]dom.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var nodes []*cdp.Node
	err := chromedp.Run(p.ctx,
		chromedp.Nodes(expr, &nodes, chromedp.BySearch, chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, fmt.Errorf("evaluating selector %q: %w", expr, err)
	}
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &element{ctx: p.ctx, node: n})
	}
	return out, nil
}

type element struct {
	ctx  context.Context
	node *cdp.Node
}

func (e *element) ID() string {
	if id := e.node.AttributeValue("id"); id != "" {
		return id
	}
	return e.node.AttributeValue("name")
}

func (e *element) Tag() string {
	return strings.ToLower(e.node.NodeName)
}

func (e *element) Attr(name string) string {
	return e.node.AttributeValue(name)
}

// call runs fnBody as a function with the element bound to this. Arguments
// are inlined as JSON literals before the body is sent, which sidesteps the
// remote-argument marshaling for the handful of scalar values we pass.
func (e *element) call(fnBody string, out any, args ...any) error {
	for i, a := range args {
		lit, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encoding script argument: %w", err)
		}
		fnBody = strings.ReplaceAll(fnBody, fmt.Sprintf("$%d", i), string(lit))
	}

	return chromedp.Run(e.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := cdpdom.ResolveNode().WithBackendNodeID(e.node.BackendNodeID).Do(ctx)
		if err != nil {
			return fmt.Errorf("resolving node %q: %w", e.ID(), err)
		}
		res, exc, err := runtime.CallFunctionOn(fnBody).
			WithObjectID(obj.ObjectID).
			WithReturnByValue(true).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("calling page script on %q: %w", e.ID(), err)
		}
		if exc != nil {
			return fmt.Errorf("page script on %q failed: %s", e.ID(), exc.Text)
		}
		if out != nil && res != nil && res.Value != nil {
			if err := json.Unmarshal([]byte(res.Value), out); err != nil {
				return fmt.Errorf("decoding script result for %q: %w", e.ID(), err)
			}
		}
		return nil
	}))
}

func (e *element) Attached(context.Context) bool {
	var connected bool
	if err := e.call(`function() { return this.isConnected; }`, &connected); err != nil {
		return false
	}
	return connected
}

func (e *element) Visible(context.Context) (bool, error) {
	var visible bool
	err := e.call(`function() {
		const rect = this.getBoundingClientRect();
		const style = window.getComputedStyle(this);
		return rect.width > 0 && rect.height > 0 &&
			style.display !== "none" && style.visibility !== "hidden";
	}`, &visible)
	if err != nil {
		return false, err
	}
	return visible, nil
}

func (e *element) Value(context.Context) (string, error) {
	var value string
	err := e.call(`function() { return String(this.value ?? ""); }`, &value)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (e *element) SetValue(_ context.Context, value string) error {
	return e.call(`function() {
		this.focus();
		this.value = $0;
		this.dispatchEvent(new Event("input", { bubbles: true }));
		this.dispatchEvent(new Event("change", { bubbles: true }));
	}`, nil, value)
}

// SetValueReactive writes through the prototype's value setter so inputs
// whose value property is shadowed by a framework still observe the change
// when the input event fires.
func (e *element) SetValueReactive(_ context.Context, value string) error {
	return e.call(`function() {
		const proto = this.tagName === "TEXTAREA"
			? window.HTMLTextAreaElement.prototype
			: window.HTMLInputElement.prototype;
		const desc = Object.getOwnPropertyDescriptor(proto, "value");
		if (!desc || !desc.set) {
			throw new Error("no native value setter on " + this.tagName);
		}
		this.focus();
		desc.set.call(this, $0);
		this.dispatchEvent(new Event("input", { bubbles: true }));
		this.dispatchEvent(new Event("change", { bubbles: true }));
	}`, nil, value)
}

func (e *element) Options(context.Context) ([]dom.Option, error) {
	var opts []dom.Option
	err := e.call(`function() {
		return Array.from(this.options || []).map(o => ({
			value: o.value,
			label: (o.textContent || "").trim(),
		}));
	}`, &opts)
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func (e *element) SelectOption(_ context.Context, value string) error {
	return e.call(`function() {
		this.value = $0;
		this.dispatchEvent(new Event("input", { bubbles: true }));
		this.dispatchEvent(new Event("change", { bubbles: true }));
	}`, nil, value)
}

func (e *element) Checked(context.Context) (bool, error) {
	var checked bool
	if err := e.call(`function() { return !!this.checked; }`, &checked); err != nil {
		return false, err
	}
	return checked, nil
}

// SetChecked clicks the control when its state differs, so the browser fires
// the full native event sequence.
func (e *element) SetChecked(_ context.Context, checked bool) error {
	return e.call(`function() {
		if (!!this.checked !== $0) {
			this.click();
		}
	}`, nil, checked)
}

func (e *element) Click(context.Context) error {
	if err := chromedp.Run(e.ctx, chromedp.MouseClickNode(e.node)); err != nil {
		return fmt.Errorf("clicking %q: %w", e.ID(), err)
	}
	return nil
}
