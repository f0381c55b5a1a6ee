// Package timeofday parses 12-hour wall-clock strings such as "09:00 AM".
package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is matched by every ParseError.
var ErrInvalidTime = errors.New("invalid time of day")

// ParseError describes why a clock string was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %s", e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidTime) hold for parse failures.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidTime
}

// Clock is a parsed 24-hour time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock converts "HH:MM AM|PM" into a 24-hour clock value. The suffix is
// matched case-insensitively and the hour may have one or two digits.
func ParseClock(text string) (Clock, error) {
	raw := strings.TrimSpace(text)
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Clock{}, &ParseError{Input: text, Reason: "expected \"HH:MM AM|PM\""}
	}

	hh, mm, ok := strings.Cut(fields[0], ":")
	if !ok {
		return Clock{}, &ParseError{Input: text, Reason: "missing ':' separator"}
	}
	hour, err := parseDigits(hh, 2)
	if err != nil {
		return Clock{}, &ParseError{Input: text, Reason: "hour is not numeric"}
	}
	if len(mm) != 2 {
		return Clock{}, &ParseError{Input: text, Reason: "minute must have two digits"}
	}
	minute, err := parseDigits(mm, 2)
	if err != nil {
		return Clock{}, &ParseError{Input: text, Reason: "minute is not numeric"}
	}
	if hour < 1 || hour > 12 {
		return Clock{}, &ParseError{Input: text, Reason: "hour out of range 1-12"}
	}
	if minute > 59 {
		return Clock{}, &ParseError{Input: text, Reason: "minute out of range 0-59"}
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 12 {
			hour += 12
		}
	default:
		return Clock{}, &ParseError{Input: text, Reason: "suffix must be AM or PM"}
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Parse anchors text to the calendar day and location of ref. Seconds and
// sub-second fields are zero.
func Parse(text string, ref time.Time) (time.Time, error) {
	c, err := ParseClock(text)
	if err != nil {
		return time.Time{}, err
	}
	return c.On(ref), nil
}

// Hours returns the fractional hour of day, e.g. "01:30 PM" is 13.5.
func Hours(text string) (float64, error) {
	c, err := ParseClock(text)
	if err != nil {
		return 0, err
	}
	return float64(c.Hour) + float64(c.Minute)/60, nil
}

// On returns the clock time on the day of ref.
func (c Clock) On(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, ref.Location())
}

// String renders the clock back in 12-hour form.
func (c Clock) String() string {
	suffix := "AM"
	hour := c.Hour
	if hour >= 12 {
		suffix = "PM"
	}
	if hour%12 == 0 {
		hour = 12
	} else {
		hour %= 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, c.Minute, suffix)
}

func parseDigits(s string, max int) (int, error) {
	if s == "" || len(s) > max {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
