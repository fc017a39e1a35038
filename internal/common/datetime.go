package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
)

func Now() time.Time {
	return time.Now().UTC()
}

// Today truncates the current time to a UTC calendar date.
func Today() time.Time {
	return TruncateToDate(Now())
}

func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FirstOfMonthAfter returns the first day of the month that is `months`
// calendar months after t. Installment due dates always land on it.
func FirstOfMonthAfter(t time.Time, months int) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from one calendar date to another,
// negative when `to` precedes `from`.
func DaysBetween(from, to time.Time) int64 {
	return int64(TruncateToDate(to).Sub(TruncateToDate(from)).Hours() / 24)
}
