// Package schedule holds the calendar-month arithmetic behind installment
// schedules: how many months separate two dates, when a plan ends, and how
// many installments remain.
package schedule

import "time"

// MonthDiff counts whole calendar-month boundaries crossed between from and
// to. Day-of-month is ignored: Jan 31 to Feb 1 is one month even though only
// a day elapsed. Negative when to precedes from.
func MonthDiff(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// AddMonths advances d by n calendar months, clamping the day to the length
// of the target month (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year).
// time.AddDate normalizes overflow into the following month instead, which is
// not what an installment end date means.
func AddMonths(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, n, 0)
	day := d.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}

// RemainingEMI is the number of installments still owed, floored at zero so
// overpaying never produces a negative balance.
func RemainingEMI(totalMonths, monthsPaid int) int {
	if r := totalMonths - monthsPaid; r > 0 {
		return r
	}
	return 0
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
