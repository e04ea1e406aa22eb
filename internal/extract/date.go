package extract

import (
	"fmt"
	"strings"
	"time"
)

// layouts are tried in order after any source-specific layouts. US
// month-first forms come before day-first ones.
var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01/02/2006 15:04:05",
	"2006/01/02",
	"01-02-2006",
	"02.01.2006",
	"02-Jan-2006",
	"2-Jan-06",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"20060102",
}

// ParseDate parses s with the preferred layouts first, then the generic
// list, interpreting zone-less values in loc.
func ParseDate(s string, preferred []string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range preferred {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
