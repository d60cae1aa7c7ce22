package market

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time of day attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Clock is a wall-clock time of day, second resolution.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Anchor is the calendar start of a candle's bucket. The zero Anchor means
// "no start given" and is distinct from a real 1970-01-01 00:00:00 anchor.
type Anchor struct {
	date  Date
	clock Clock
	set   bool
}

// NewAnchor returns a valid anchor for the given day and time of day.
func NewAnchor(date Date, clock Clock) Anchor {
	return Anchor{date: date, clock: clock, set: true}
}

// AnchorAt builds an anchor from an instant, normalised to UTC.
func AnchorAt(t time.Time) Anchor {
	t = t.UTC()
	y, m, d := t.Date()
	return Anchor{
		date:  Date{Year: y, Month: m, Day: d},
		clock: Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
		set:   true,
	}
}

func (a Anchor) Valid() bool  { return a.set }
func (a Anchor) Date() Date   { return a.date }
func (a Anchor) Clock() Clock { return a.clock }

// Time returns the anchor as a UTC instant. The zero time.Time is returned
// for an unspecified anchor.
func (a Anchor) Time() time.Time {
	if !a.set {
		return time.Time{}
	}
	return time.Date(a.date.Year, a.date.Month, a.date.Day,
		a.clock.Hour, a.clock.Minute, a.clock.Second, 0, time.UTC)
}

// Before reports whether a is strictly earlier than b. Unspecified anchors
// are never before anything and nothing is before them.
func (a Anchor) Before(b Anchor) bool {
	if !a.set || !b.set {
		return false
	}
	return a.Time().Before(b.Time())
}

func (a Anchor) String() string {
	if !a.set {
		return "unset"
	}
	return a.date.String() + " " + a.clock.String()
}
