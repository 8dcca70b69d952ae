package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a calendar date from CLI input.
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2024")
// - yyyy-mm-dd (e.g., "2024-12-15")
// - "today", "tomorrow"
// Returns the canonical yyyy-mm-dd form events are stored in.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "today":
		return now.Format("2006-01-02"), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02"), nil
	}

	if d, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return d.Format("2006-01-02"), nil
	}
	if d, err := parseSlashDate(input); err == nil {
		return d.Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("invalid date format. Use: dd/mm/yyyy, yyyy-mm-dd, today, or tomorrow")
}

// parseSlashDate parses dd/mm/yyyy format
func parseSlashDate(input string) (time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return d, nil
}

// ParseTime parses a wall-clock time in HH:MM form
func ParseTime(input string) (string, error) {
	input = strings.TrimSpace(input)
	t, err := time.Parse("15:04", input)
	if err != nil {
		return "", fmt.Errorf("invalid time format. Use HH:MM, e.g. 09:00")
	}
	return t.Format("15:04"), nil
}
