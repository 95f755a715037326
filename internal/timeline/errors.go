package timeline

import "fmt"

// FormatError reports a malformed piece of the export: the document itself,
// a coordinate string, or a timestamp.
type FormatError struct {
	Field string // which part of the export was malformed
	Value string // the offending value, when small enough to repeat
	Err   error
}

func (e *FormatError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed %s: %v", e.Field, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
