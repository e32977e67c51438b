package schedule

import "time"

// WeekRange returns the covering week of t in t's location: Monday
// 00:00:00.000 through Sunday 23:59:59.999. A Sunday input belongs to the
// week that started the previous Monday.
func WeekRange(t time.Time) (start, end time.Time) {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	sunday := start.AddDate(0, 0, 6)
	end = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}
