// Package window computes canonical period boundaries (week, month, year,
// rolling N-day) used by the calculators and detectors to scope their
// aggregations. All functions are pure and operate on the caller-supplied
// instant, never on time.Now(), so analysis runs are deterministic and
// reproducible given a fixed "as-of" timestamp.
package window

import "time"

// Bounds is an inclusive-exclusive half-open interval [Start, End) expressed
// as calendar-day boundaries at midnight UTC.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// DaysTotal returns the number of whole days spanned by the bounds.
func (b Bounds) DaysTotal() int {
	return int(b.End.Sub(b.Start).Hours() / 24)
}

// DaysElapsed returns how many days of the bounds have elapsed as of `now`,
// clamped to [1, DaysTotal()] so callers never divide by zero.
func (b Bounds) DaysElapsed(now time.Time) int {
	if now.Before(b.Start) {
		return 1
	}
	elapsed := int(now.Sub(b.Start).Hours()/24) + 1
	total := b.DaysTotal()
	if total <= 0 {
		total = 1
	}
	if elapsed > total {
		return total
	}
	if elapsed < 1 {
		return 1
	}
	return elapsed
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekBounds returns [start, end) for the 7-day week containing t, where
// the week begins on startDay.
func WeekBounds(t time.Time, startDay time.Weekday) Bounds {
	day := midnight(t)
	offset := int(day.Weekday() - startDay)
	if offset < 0 {
		offset += 7
	}
	start := day.AddDate(0, 0, -offset)
	return Bounds{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthBounds returns [1st, 1st-of-next-month) for the month containing t.
func MonthBounds(t time.Time) Bounds {
	y, m, _ := t.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return Bounds{Start: start, End: start.AddDate(0, 1, 0)}
}

// YearBounds returns [Jan1, Jan1-of-next-year) for the year containing t.
func YearBounds(t time.Time) Bounds {
	y, _, _ := t.Date()
	start := time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	return Bounds{Start: start, End: start.AddDate(1, 0, 0)}
}

// RollingWindow returns [now-days, now) as a trailing window anchored at now.
func RollingWindow(now time.Time, days int) Bounds {
	end := midnight(now).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)
	return Bounds{Start: start, End: end}
}

// BoundsForPeriod computes the bounds for a named recurrence period,
// matching the budget-drift rule: week starts on startDay, month is
// calendar-month, year is calendar-year. periodKind must be one of
// "weekly", "monthly", "yearly", "daily"; daily returns the single day
// containing t. Unknown kinds fall back to MonthBounds.
func BoundsForPeriod(t time.Time, periodKind string, startDay time.Weekday) Bounds {
	switch periodKind {
	case "daily":
		day := midnight(t)
		return Bounds{Start: day, End: day.AddDate(0, 0, 1)}
	case "weekly":
		return WeekBounds(t, startDay)
	case "yearly":
		return YearBounds(t)
	default:
		return MonthBounds(t)
	}
}

// PreviousMonths returns the bounds of the n calendar months immediately
// preceding the month containing t, oldest first.
func PreviousMonths(t time.Time, n int) []Bounds {
	out := make([]Bounds, 0, n)
	cursor := MonthBounds(t)
	for i := 0; i < n; i++ {
		prevStart := cursor.Start.AddDate(0, -1, 0)
		cursor = Bounds{Start: prevStart, End: cursor.Start}
		out = append(out, cursor)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
