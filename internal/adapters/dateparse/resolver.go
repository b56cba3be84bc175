// Package dateparse resolves free-form date expressions for report windows.
package dateparse

import (
	"fmt"
	"strings"
	"time"

	naturaldate "github.com/tj/go-naturaldate"

	"github.com/example/tempo/internal/core/report"
)

// absoluteLayouts are tried before natural-language parsing so ISO input
// never depends on the expression grammar.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Resolver implements report.Resolver with absolute layouts first, then
// natural-language expressions ("yesterday", "2 weeks ago") biased toward
// the past.
type Resolver struct{}

// NewResolver creates a date-expression resolver.
func NewResolver() Resolver {
	return Resolver{}
}

// Resolve turns expr into an absolute timestamp anchored at anchor.
// Failures wrap report.ErrParse.
func (Resolver) Resolve(expr string, anchor time.Time) (time.Time, error) {
	for _, layout := range absoluteLayouts {
		if resolved, err := time.Parse(layout, expr); err == nil {
			return resolved, nil
		}
	}

	resolved, err := naturaldate.Parse(expr, anchor, naturaldate.WithDirection(naturaldate.Past))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", report.ErrParse, expr)
	}

	// naturaldate returns the anchor with a nil error when the grammar
	// consumes nothing, so gibberish would otherwise masquerade as "now".
	// Only an explicit now-expression may legitimately resolve to the anchor.
	if resolved.Equal(anchor) && !isNowExpression(expr) {
		return time.Time{}, fmt.Errorf("%w: %q", report.ErrParse, expr)
	}
	return resolved, nil
}

func isNowExpression(expr string) bool {
	switch strings.ToLower(strings.TrimSpace(expr)) {
	case "now", "right now":
		return true
	}
	return false
}

// Ensure Resolver implements the port
var _ report.Resolver = Resolver{}
