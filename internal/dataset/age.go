package dataset

import (
	"strings"
	"time"
)

// birthDateLayout is the day-month-year format used by the application form.
const birthDateLayout = "02-01-2006"

// Age computes a candidate's age in completed years as of the given date.
// The second return is false when the birth-date string is empty or does
// not parse. Pure function, no side effects.
func Age(birthDate string, asOf time.Time) (int, bool) {
	s := strings.TrimSpace(birthDate)
	if s == "" {
		return 0, false
	}
	born, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return 0, false
	}

	age := asOf.Year() - born.Year()
	// Subtract one when the birthday has not been reached yet this year.
	if asOf.Month() < born.Month() ||
		(asOf.Month() == born.Month() && asOf.Day() < born.Day()) {
		age--
	}
	return age, true
}
