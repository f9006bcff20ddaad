package planner

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/agenda/internal/common"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// time.Parse accepts un-padded numerics ("2025-7-1"), so the shape is
// checked separately to enforce the exact YYYY-MM-DD HH:MM pattern.
var (
	dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeShape = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParseTimeKey parses an event's date and clock strings into the timestamp
// used as the ordering key of the time index. The accepted forms are exactly
// "YYYY-MM-DD" and "HH:MM" (24-hour clock, no timezone); anything else fails
// with common.ErrorInvalidTimeFormat.
//
// Equal keys are legal: multiple events may start at the same instant.
func ParseTimeKey(date, clock string) (time.Time, error) {
	if !dateShape.MatchString(date) || !timeShape.MatchString(clock) {
		return time.Time{}, fmt.Errorf("%q %q: %w", date, clock, common.ErrorInvalidTimeFormat)
	}
	key, err := time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q %q: %w", date, clock, common.ErrorInvalidTimeFormat)
	}
	return key, nil
}
