package domain

import "fmt"

// FormatPediatricAge converts a birth date and a reference date into the
// age label used on pediatric reports. Whole years and months are computed
// by calendar-field subtraction, not day counting:
//
//	years  = ref.Year - birth.Year
//	months = ref.Month - birth.Month
//
// with a borrow when months is negative (or months is zero and the reference
// day precedes the birth day), and one further month decrement whenever the
// reference day precedes the birth day. The second adjustment applies even
// when the borrow already fired, so a day-of-month shortfall can subtract
// two months in total.
//
// Label tiers:
//
//	years == 0 -> "<m> months"
//	years <  2 -> "<y> year <m> months"  (singular "year" literal)
//	otherwise  -> "<y> years"            (months dropped)
func FormatPediatricAge(birth, ref Date) string {
	years := ref.Year - birth.Year
	months := int(ref.Month) - int(birth.Month)

	if months < 0 || (months == 0 && ref.Day < birth.Day) {
		years--
		months += 12
	}
	if ref.Day < birth.Day {
		months--
	}

	switch {
	case years == 0:
		return fmt.Sprintf("%d months", months)
	case years < 2:
		return fmt.Sprintf("%d year %d months", years, months)
	default:
		return fmt.Sprintf("%d years", years)
	}
}
