package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RRNInfo holds the demographic fields derived from a resident registration
// number: sex, birth date, and the pediatric age label relative to the
// reference date supplied by the caller.
type RRNInfo struct {
	Sex       Sex    `json:"sex"`
	BirthDate Date   `json:"birth_date"`
	AgeLabel  string `json:"age"`
}

// rrnDigits strips every non-digit rune from the raw input. Separators such
// as the customary hyphen are ignored at any position, not validated.
func rrnDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseRRN derives sex, birth date, and a pediatric age label from a resident
// registration number. The first six significant digits are the birth date
// as YYMMDD; the seventh selects century and sex:
//
//	1, 2 -> 1900s male/female
//	3, 4 -> 2000s male/female
//	5, 6 -> 1800s male/female
//
// Any other seventh digit fails the parse. Month must be 1-12 and day 1-31;
// no per-month day-count or leap-year validation is performed. No checksum
// of the trailing digits is verified.
//
// The reference date is an explicit parameter so callers (and tests) control
// "today". The function is pure; a failed parse returns an error the caller
// treats as "cannot auto-fill".
func ParseRRN(raw string, ref Date) (*RRNInfo, error) {
	digits := rrnDigits(raw)
	if len(digits) < 7 {
		return nil, fmt.Errorf("parsing RRN: %w", ErrRRNTooShort)
	}

	yy, _ := strconv.Atoi(digits[0:2])
	month, _ := strconv.Atoi(digits[2:4])
	day, _ := strconv.Atoi(digits[4:6])

	var century int
	var sex Sex
	switch digits[6] {
	case '1':
		century, sex = 1900, SexMale
	case '2':
		century, sex = 1900, SexFemale
	case '3':
		century, sex = 2000, SexMale
	case '4':
		century, sex = 2000, SexFemale
	case '5':
		century, sex = 1800, SexMale
	case '6':
		century, sex = 1800, SexFemale
	default:
		return nil, fmt.Errorf("parsing RRN: %w", ErrRRNCenturyDigit)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, fmt.Errorf("parsing RRN: %w", ErrRRNDateRange)
	}

	birth := NewDate(century+yy, time.Month(month), day)

	return &RRNInfo{
		Sex:       sex,
		BirthDate: birth,
		AgeLabel:  FormatPediatricAge(birth, ref),
	}, nil
}

// FormatRRN normalizes user input to the customary display form: digits
// only, a hyphen after the sixth digit, capped at thirteen digits.
func FormatRRN(raw string) string {
	digits := rrnDigits(raw)
	if len(digits) > 13 {
		digits = digits[:13]
	}
	if len(digits) <= 6 {
		return digits
	}
	return digits[:6] + "-" + digits[6:]
}
