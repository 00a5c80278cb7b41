package intake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DateNotSpecified is returned when no date phrase was ever captured.
	DateNotSpecified = "Not specified"
	// DateASAP is the sentinel for "as soon as possible" requests.
	DateASAP = "ASAP"
)

var (
	numericDateRE = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	clockTimeRE   = regexp.MustCompile(`(?i)\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm|a\.m\.|p\.m\.)`)
	bareTimeRE    = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// weekdayNames is ordered so scanning is deterministic when a phrase mentions
// more than one day; the first listed match wins.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// NormalizeDate converts a captured natural-language date phrase into an
// absolute MM/DD/YY representation relative to the given reference instant.
// The reference is explicit so the routine stays deterministic and testable.
// Phrases it cannot interpret come back unchanged.
func NormalizeDate(phrase string, now time.Time) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return DateNotSpecified
	}
	lower := strings.ToLower(phrase)
	clock := extractClockTime(phrase)

	// An explicit numeric date passes through untouched.
	if d := numericDateRE.FindString(phrase); d != "" {
		return joinDateTime(d, clock)
	}

	if strings.Contains(lower, "today") {
		return joinDateTime(formatDate(now), clock)
	}
	if strings.Contains(lower, "tomorrow") {
		return joinDateTime(formatDate(now.AddDate(0, 0, 1)), clock)
	}

	if strings.Contains(lower, "asap") || strings.Contains(lower, "soon") {
		return DateASAP
	}

	for _, wd := range weekdayNames {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		// Next occurrence strictly after the reference date.
		days := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		if strings.Contains(lower, "next") {
			days += 7
		}
		return joinDateTime(formatDate(now.AddDate(0, 0, days)), clock)
	}

	// Unparsed fallback.
	return phrase
}

// extractClockTime pulls an "H[:MM]am/pm" or 24-hour "HH:MM" substring out of
// the phrase and renders it as zero-padded 24-hour "HH:MM". Empty when the
// phrase carries no time.
func extractClockTime(phrase string) string {
	if m := clockTimeRE.FindStringSubmatch(phrase); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour > 12 {
			return ""
		}
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		meridiem := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	if m := bareTimeRE.FindStringSubmatch(phrase); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return ""
}

func joinDateTime(date, clock string) string {
	if clock == "" {
		return date
	}
	return date + " " + clock
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%02d", int(t.Month()), t.Day(), t.Year()%100)
}
