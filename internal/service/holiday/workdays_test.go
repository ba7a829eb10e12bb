package holiday

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCountWorkingDays(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		excluded []string
		want     int
	}{
		{"full business week", "2025-06-02", "2025-06-06", nil, 5},
		{"weekend only", "2025-06-07", "2025-06-08", nil, 0},
		{"single weekday", "2025-06-04", "2025-06-04", nil, 1},
		{"single saturday", "2025-06-07", "2025-06-07", nil, 0},
		{"spanning two weekends", "2025-06-06", "2025-06-09", nil, 2},
		{"start after end", "2025-06-06", "2025-06-02", nil, 0},
		{"public holiday excluded", "2025-06-02", "2025-06-06", []string{"2025-06-04"}, 4},
		{"weekend holiday has no effect", "2025-06-02", "2025-06-08", []string{"2025-06-07"}, 5},
		{"every weekday excluded", "2025-06-02", "2025-06-06", []string{
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06",
		}, 0},
		{"month boundary", "2025-05-30", "2025-06-02", nil, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			excluded := make(map[string]struct{}, len(c.excluded))
			for _, d := range c.excluded {
				excluded[d] = struct{}{}
			}
			got := CountWorkingDays(date(c.start), date(c.end), excluded)
			if got != c.want {
				t.Errorf("CountWorkingDays(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
			}
		})
	}
}
