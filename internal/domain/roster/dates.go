package roster

import "time"

// Date truncates t to a civil date at midnight UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AnchorMonday returns the Monday of the calendar week containing today.
func AnchorMonday(today time.Time) time.Time {
	d := Date(today)
	offset := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}
