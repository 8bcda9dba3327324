package datemath

import "time"

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Weekday resolves a lowercase weekday name to its time.Weekday.
func Weekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[name]
	return wd, ok
}
