package report

import (
	"fmt"
	"strings"
	"time"
)

var units = [...]string{"year", "month", "day", "hour", "minute"}

// halfway[i] is the value of units[i+1] at which units[i] is rounded up in
// short form. Minutes are never rounded.
var halfway = [...]int{6, 15, 12, 30}

// breakdown splits d into whole years, 30-day months, days, hours and minutes.
// Years are twelve such months. Negative durations count as zero.
func breakdown(d time.Duration) [len(units)]int {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := int(total / 86400)
	secs := int(total % 86400)

	months, days := days/30, days%30
	years, months := months/12, months%12
	minutes := secs / 60
	hours, minutes := minutes/60, minutes%60

	return [len(units)]int{years, months, days, hours, minutes}
}

// Elapsed renders d as "3 days" or, when verbose, "3 days, 0 hours, 12 minutes".
// Leading zero units are skipped. The short form rounds its single unit up when
// the next finer unit is at least halfway.
func Elapsed(d time.Duration, verbose bool) string {
	parts := breakdown(d)
	last := len(parts) - 1

	first := 0
	for first < last && parts[first] == 0 {
		first++
	}

	if !verbose {
		n := parts[first]
		if first < last && parts[first+1] >= halfway[first] {
			n++
		}
		return pluralize(units[first], n)
	}

	out := make([]string, 0, len(parts)-first)
	for i := first; i <= last; i++ {
		out = append(out, pluralize(units[i], parts[i]))
	}
	return strings.Join(out, ", ")
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
