package model

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidCalendarDate reports whether s is a real YYYY-MM-DD calendar date.
// Constructing the date is not enough on its own: time.Date normalizes
// out-of-range components (day 32 rolls into the next month), so the
// components are re-derived from the constructed date and compared against
// the parsed input.
func IsValidCalendarDate(s string) bool {
	if !dateShape.MatchString(s) {
		return false
	}

	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])

	dt := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return dt.Year() == y && dt.Month() == time.Month(m) && dt.Day() == d
}

// ParseCalendarDate leniently parses dateStr into a UTC midnight. It splits
// on "-" and requires exactly three numeric, non-zero parts. Unlike
// IsValidCalendarDate it tolerates overflowing components, which normalize
// the way the calendar view always has.
func ParseCalendarDate(dateStr string) (time.Time, bool) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	y, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	d, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}
	if y == 0 || m == 0 || d == 0 {
		return time.Time{}, false
	}

	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// DayOffset returns the signed count of whole calendar days from today to
// the date in dateStr. Zero means today, positive future, negative past.
// Both sides are normalized to UTC midnight, so the difference is always an
// exact multiple of a day and a single rounding rule serves both the
// upcoming and the past direction.
func DayOffset(dateStr string, today time.Time) (int, bool) {
	target, ok := ParseCalendarDate(dateStr)
	if !ok {
		return 0, false
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int((target.Unix() - midnight.Unix()) / secondsPerDay), true
}

type ClassifiedEvent struct {
	Event
	// Offset is days until the event for upcoming entries and days elapsed
	// for past entries, never negative.
	Offset int  `json:"offset"`
	Urgent bool `json:"urgent"`
}

type Classification struct {
	Upcoming []ClassifiedEvent `json:"upcoming"`
	Past     []ClassifiedEvent `json:"past"`
}

// Classify buckets events into upcoming (today or later) and past sets.
// Events with a blank or malformed date are silently dropped so corrupt
// stored records never break the time-based views. Both buckets are sorted
// ascending by offset; the sort is stable so equal offsets keep store order.
func Classify(events []Event, today time.Time) Classification {
	c := Classification{
		Upcoming: []ClassifiedEvent{},
		Past:     []ClassifiedEvent{},
	}

	for _, ev := range events {
		if ev.Date == "" {
			continue
		}

		offset, ok := DayOffset(ev.Date, today)
		if !ok {
			continue
		}

		ev.Type = NormalizeEventType(string(ev.Type))

		if offset >= 0 {
			c.Upcoming = append(c.Upcoming, ClassifiedEvent{
				Event:  ev,
				Offset: offset,
				Urgent: offset == 0 || offset == 1,
			})
		} else {
			c.Past = append(c.Past, ClassifiedEvent{
				Event:  ev,
				Offset: -offset,
			})
		}
	}

	sort.SliceStable(c.Upcoming, func(i, j int) bool {
		return c.Upcoming[i].Offset < c.Upcoming[j].Offset
	})
	sort.SliceStable(c.Past, func(i, j int) bool {
		return c.Past[i].Offset < c.Past[j].Offset
	})

	return c
}

const FilterAll = "all"

// FilterByType keeps entries whose type exactly matches filter, preserving
// relative order. A blank filter or FilterAll is the identity.
func FilterByType(items []ClassifiedEvent, filter string) []ClassifiedEvent {
	if filter == "" || filter == FilterAll {
		return items
	}

	out := make([]ClassifiedEvent, 0, len(items))
	for _, it := range items {
		if string(it.Type) == filter {
			out = append(out, it)
		}
	}
	return out
}

// CountUrgent counts entries due today or tomorrow.
func CountUrgent(items []ClassifiedEvent) int {
	n := 0
	for _, it := range items {
		if it.Urgent {
			n++
		}
	}
	return n
}

// GroupByDate maps events onto their calendar day, for calendar marks.
// Undated events are skipped.
func GroupByDate(events []Event) map[string][]Event {
	marks := make(map[string][]Event)
	for _, ev := range events {
		if ev.Date == "" {
			continue
		}
		marks[ev.Date] = append(marks[ev.Date], ev)
	}
	return marks
}
