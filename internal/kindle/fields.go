package kindle

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

// Regex patterns for the metadata line of a clip, e.g.
// "- Your Highlight on pages 40-45 | Location 542-546 | Added on Thursday, November 17, 2022 12:55:54 PM"
var (
	// "on pages 40-45" or "on page 46"
	pagePattern = regexp.MustCompile(`(?i)pages? ([0-9]+)-([0-9]+)|page ([0-9]+)`)

	// "Location 542-546" or "Location 3326"
	locationPattern = regexp.MustCompile(`(?i)Location ([0-9]+)-([0-9]+)|Location ([0-9]+)`)

	// "Added on Thursday, November 17, 2022"
	datePattern = regexp.MustCompile(`(?i)Added on [a-z]+, ([a-z]+) ([0-9]{1,2}), ([0-9]{4})`)

	// "12:55:54 PM", anchored to the end of the line
	timePattern = regexp.MustCompile(`(?i)([0-9]{1,2}):([0-9]{1,2}):([0-9]{1,2}) ([AP]M)$`)
)

// English month names as Kindle writes them. Other display languages are
// not handled: their dates simply come out absent.
var months = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// ExtractPage pulls the page numbers out of a metadata line. The result has
// two elements for a range, one for a single page, and is nil when the line
// carries no page information. No match is a valid outcome, not an error.
func ExtractPage(line string) []int {
	return matchIntGroups(pagePattern, line)
}

// ExtractLocation pulls the Kindle location numbers out of a metadata line.
// Same contract as ExtractPage.
func ExtractLocation(line string) []int {
	return matchIntGroups(locationPattern, line)
}

func matchIntGroups(pattern *regexp.Regexp, line string) []int {
	matches := pattern.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}

	var values []int
	for _, group := range matches[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			// The groups only match digit runs; an overflowing value
			// is treated the same as no capture.
			continue
		}
		values = append(values, n)
	}
	return values
}

// ExtractDate pulls the "Added on <weekday>, <month> <day>, <year>" date out
// of a metadata line. Returns nil when the line has no date or the month
// name is not an English month.
func ExtractDate(line string) *entities.Date {
	matches := datePattern.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}

	month, ok := months[strings.ToLower(matches[1])]
	if !ok {
		return nil
	}
	day, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	return &entities.Date{Year: year, Month: month, Day: day}
}

// ExtractTime pulls the trailing "H:MM:SS AM/PM" clock reading out of a
// metadata line and converts it to 24-hour time. Returns nil when the line
// does not end with a clock reading.
func ExtractTime(line string) *entities.TimeOfDay {
	matches := timePattern.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	second, _ := strconv.Atoi(matches[3])
	period := strings.ToUpper(matches[4])

	// 12 PM is noon and 12 AM is midnight.
	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	return &entities.TimeOfDay{Hour: hour, Minute: minute, Second: second}
}
