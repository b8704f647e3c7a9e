package repo

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// DayRange returns the UTC bounds [start, end) of the calendar day that lies
// offsetDays before now's day in loc. offsetDays = 0 is "today".
func DayRange(now time.Time, loc *time.Location, offsetDays int) (start, end time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()
	start = time.Date(y, m, d-offsetDays, 0, 0, 0, 0, loc)
	end = time.Date(y, m, d-offsetDays+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}

// TrailingDays returns the UTC bounds of the last `days` calendar days in
// loc, today included, plus the YYYY-MM-DD label of each day in order.
func TrailingDays(now time.Time, loc *time.Location, days int) (start, end time.Time, labels []string) {
	start, _ = DayRange(now, loc, days-1)
	_, end = DayRange(now, loc, 0)
	labels = make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		s, _ := DayRange(now, loc, i)
		labels = append(labels, s.In(loc).Format(time.DateOnly))
	}
	return start, end, labels
}

// WeekStart returns the start of the day seven days before now in loc: the
// inclusive lower bound of the per-user week window.
func WeekStart(now time.Time, loc *time.Location) time.Time {
	start, _ := DayRange(now, loc, 7)
	return start
}

// dayExpr returns a dialect-specific SQL expression rendering col as the
// YYYY-MM-DD calendar day after shifting it by a bound interval argument
// (see shiftArg). col is always a constant column name.
func dayExpr(db *gorm.DB, col string) string {
	if db.Dialector.Name() == "postgres" {
		return "TO_CHAR(" + col + " + CAST(? AS INTERVAL), 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', " + col + ", ?)"
}

// shiftArg is the bound argument for dayExpr: loc's UTC offset at `at`, as a
// signed minute count both SQLite modifiers and PostgreSQL intervals accept.
func shiftArg(loc *time.Location, at time.Time) string {
	_, off := at.In(loc).Zone()
	return fmt.Sprintf("%+d minutes", off/60)
}

// round2 rounds to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percent returns part/whole*100 rounded to two decimals, or 0 when whole is
// not positive.
func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}
