package age

import (
	"fmt"
	"time"
)

// dobLayout is the profile date-of-birth wire format.
const dobLayout = "02/01/2006"

// ParseDOB parses a "DD/MM/YYYY" date of birth.
func ParseDOB(dob string) (time.Time, error) {
	t, err := time.Parse(dobLayout, dob)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth %q: expected DD/MM/YYYY", dob)
	}
	return t, nil
}

// At computes full years elapsed between the DOB and now, decrementing by one
// when now's month/day precedes the birth month/day.
func At(dob string, now time.Time) (int, error) {
	birth, err := ParseDOB(dob)
	if err != nil {
		return 0, err
	}

	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, nil
}

// Now computes the current age for a DOB string.
func Now(dob string) (int, error) {
	return At(dob, time.Now())
}
