package runeset

import "fmt"

// ValidationError reports a malformed range: a bound outside the codepoint
// domain, a surrogate bound or inverted bounds.
type ValidationError struct {
	Low, High rune
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid range %#U..%#U: %s", e.Low, e.High, e.Reason)
}

// OverlapError reports two map domains which overlap and cannot be merged.
type OverlapError struct {
	First, Second Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping domains %v and %v", e.First, e.Second)
}
