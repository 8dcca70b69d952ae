package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tues": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thur": 4, "thurs": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// ParseWeekdays parses a comma-separated weekday list like "mon,wed,fri" or
// "1,3,5" into sorted, de-duplicated weekday ordinals (Sunday=0).
func ParseWeekdays(input string) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if n, ok := weekdayNames[part]; ok {
			seen[n] = true
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday %q. Use names (mon..sun) or numbers 0-6 with Sunday=0", part)
		}
		seen[n] = true
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("no weekdays given. Use a comma-separated list like mon,wed,fri")
	}

	days := make([]int, 0, len(seen))
	for n := range seen {
		days = append(days, n)
	}
	sort.Ints(days)
	return days, nil
}

// FormatWeekdays renders weekday ordinals the way users type them
func FormatWeekdays(days []int) string {
	short := []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			names = append(names, short[d])
		}
	}
	return strings.Join(names, ",")
}

// FormatEventDate renders a stored event date for display, with a hint for
// today and tomorrow
func FormatEventDate(date string, now time.Time) string {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(d.Sub(today).Hours() / 24)

	dateStr := d.Format("02/01/2006")
	switch daysDiff {
	case 0:
		return fmt.Sprintf("%s (today)", dateStr)
	case 1:
		return fmt.Sprintf("%s (tomorrow)", dateStr)
	default:
		return dateStr
	}
}
