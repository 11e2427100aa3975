package filler

import "fmt"

// UnsupportedFieldError indicates the element kind cannot be filled
// programmatically. File inputs always produce one: browsers do not allow
// scripts to populate them.
type UnsupportedFieldError struct {
	ElementID string
	Kind      string
	Reason    string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("cannot fill %s element %q: %s", e.Kind, e.ElementID, e.Reason)
}

// NoOptionError indicates none of a select's options matched the wanted
// value.
type NoOptionError struct {
	ElementID string
	Wanted    string
	Options   int
}

func (e *NoOptionError) Error() string {
	return fmt.Sprintf("no option matching %q in select %q (%d options)", e.Wanted, e.ElementID, e.Options)
}

// VerificationError indicates the element's value after the write did not
// match what was written.
type VerificationError struct {
	ElementID string
	Expected  string
	Actual    string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for %q: wrote %q, read back %q", e.ElementID, e.Expected, e.Actual)
}
