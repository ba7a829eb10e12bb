package holiday

import "time"

// CountWorkingDays counts the days between start and end inclusive whose
// weekday is Monday through Friday and whose YYYY-MM-DD form is not in
// excluded. A start after end counts as an empty range.
func CountWorkingDays(start, end time.Time, excluded map[string]struct{}) int {
	if start.After(end) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, holiday := excluded[d.Format(time.DateOnly)]; holiday {
			continue
		}
		count++
	}
	return count
}
