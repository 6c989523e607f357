// Package clock provides the time source for record timestamps
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant. Used by seeding and tests.
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant
func (c Fixed) Now() time.Time {
	return c.T
}
