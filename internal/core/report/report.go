// Package report defines the report-window rules: how a user-supplied date
// expression becomes the inclusive lower bound of a mission listing.
package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrParse marks a date expression that could not be resolved to a timestamp.
var ErrParse = errors.New("unparseable date expression")

// ErrInvalidRange marks a resolved date that does not lie strictly in the
// past. The window is never clamped or silently corrected.
var ErrInvalidRange = errors.New("range must start in the past")

// Resolver turns a free-form date expression into an absolute timestamp,
// using anchor as the reference instant for relative expressions.
type Resolver interface {
	Resolve(expr string, anchor time.Time) (time.Time, error)
}

// ValidateWindow checks that since lies strictly before anchor.
func ValidateWindow(since, anchor time.Time) error {
	if !since.Before(anchor) {
		return fmt.Errorf("%w: %s is not before %s",
			ErrInvalidRange, since.Format(time.RFC3339), anchor.Format(time.RFC3339))
	}
	return nil
}
