// Package filler writes profile values into form elements. It owns the per
// element-kind dispatch (text, select, checkbox, radio), the option matching
// rules for selects, and optional read-back verification.
package filler

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/dom"
)

// Options controls how a single fill is performed.
type Options struct {
	// Method selects the write path for text-like inputs. MethodAuto tries
	// the reactive path first and falls back to the native one.
	Method ats.Method
	// Verify reads the value back after writing and fails on mismatch.
	Verify bool
}

// Fill writes value into el, choosing the write path from the element kind.
// Checkbox and radio elements interpret value as a desired state rather
// than text. File inputs always fail with an UnsupportedFieldError.
func Fill(ctx context.Context, el dom.Element, value string, opts Options) error {
	switch kind(el) {
	case "file":
		return &UnsupportedFieldError{
			ElementID: el.ID(),
			Kind:      "file",
			Reason:    "file inputs cannot be populated by script",
		}
	case "select":
		return fillSelect(ctx, el, value, opts)
	case "checkbox":
		return fillChecked(ctx, el, truthy(value), opts)
	case "radio":
		return fillRadio(ctx, el, value, opts)
	default:
		return fillText(ctx, el, value, opts)
	}
}

// kind collapses tag and type into a dispatch key.
func kind(el dom.Element) string {
	if el.Tag() == "select" {
		return "select"
	}
	switch strings.ToLower(el.Attr("type")) {
	case "file":
		return "file"
	case "checkbox":
		return "checkbox"
	case "radio":
		return "radio"
	}
	return "text"
}

func fillText(ctx context.Context, el dom.Element, value string, opts Options) error {
	write := func(set func(context.Context, string) error) error {
		if err := set(ctx, value); err != nil {
			return err
		}
		if opts.Verify {
			return verifyValue(ctx, el, value)
		}
		return nil
	}

	switch opts.Method {
	case ats.MethodNative:
		return write(el.SetValue)
	case ats.MethodReactive:
		return write(el.SetValueReactive)
	default:
		// A reactive write that errors, or verifies back wrong, gets one
		// native retry.
		if err := write(el.SetValueReactive); err == nil {
			return nil
		}
		return write(el.SetValue)
	}
}

func fillSelect(ctx context.Context, el dom.Element, value string, opts Options) error {
	options, err := el.Options(ctx)
	if err != nil {
		return err
	}
	chosen, ok := matchOption(options, value)
	if !ok {
		return &NoOptionError{ElementID: el.ID(), Wanted: value, Options: len(options)}
	}
	if err := el.SelectOption(ctx, chosen); err != nil {
		return err
	}
	if opts.Verify {
		return verifyValue(ctx, el, chosen)
	}
	return nil
}

func fillChecked(ctx context.Context, el dom.Element, want bool, opts Options) error {
	if err := el.SetChecked(ctx, want); err != nil {
		return err
	}
	if opts.Verify {
		got, err := el.Checked(ctx)
		if err != nil {
			return err
		}
		if got != want {
			return &VerificationError{
				ElementID: el.ID(),
				Expected:  boolString(want),
				Actual:    boolString(got),
			}
		}
	}
	return nil
}

// fillRadio checks the radio when its value attribute matches the wanted
// value. A radio without a value attribute is treated as a yes/no control.
func fillRadio(ctx context.Context, el dom.Element, value string, opts Options) error {
	attr := el.Attr("value")
	if attr == "" {
		return fillChecked(ctx, el, truthy(value), opts)
	}
	if !strings.EqualFold(strings.TrimSpace(attr), strings.TrimSpace(value)) {
		return nil
	}
	return fillChecked(ctx, el, true, opts)
}

// matchOption picks a select option for the wanted value. Precedence: exact
// value, exact label, label containing the wanted text, then value
// containing it. All comparisons are case-insensitive.
func matchOption(options []dom.Option, want string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(want))
	if w == "" {
		return "", false
	}
	for _, o := range options {
		if strings.ToLower(strings.TrimSpace(o.Value)) == w {
			return o.Value, true
		}
	}
	for _, o := range options {
		if strings.ToLower(strings.TrimSpace(o.Label)) == w {
			return o.Value, true
		}
	}
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), w) {
			return o.Value, true
		}
	}
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Value), w) {
			return o.Value, true
		}
	}
	return "", false
}

func verifyValue(ctx context.Context, el dom.Element, expected string) error {
	actual, err := el.Value(ctx)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(actual), strings.TrimSpace(expected)) {
		return &VerificationError{ElementID: el.ID(), Expected: expected, Actual: actual}
	}
	return nil
}

// truthy interprets profile values destined for checkable controls.
func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1", "on", "checked":
		return true
	}
	return false
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// IsUnsupported reports whether err is an UnsupportedFieldError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedFieldError
	return errors.As(err, &ue)
}
