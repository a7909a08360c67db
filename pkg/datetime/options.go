// File: options.go
// Title: DateTime Construction Options
// Description: Functional options shared by every DateTime factory.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import "time"

// Option configures DateTime construction
type Option func(*options)

type options struct {
	calendar Calendar
	clock    func() time.Time
}

// WithCalendar sets the calendar engine. Values derived from the result keep
// using it.
func WithCalendar(calendar Calendar) Option {
	return func(o *options) {
		if calendar != nil {
			o.calendar = calendar
		}
	}
}

// WithClock sets the time source used by Now
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		calendar: DefaultCalendar(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
