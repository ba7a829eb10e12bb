package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
)

// MinutesOfDay parses an HH:MM 24-hour string into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, timesheet.ErrInvalidTimeFormat
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, timesheet.ErrInvalidTimeFormat
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, timesheet.ErrInvalidTimeFormat
	}
	return hours*60 + minutes, nil
}

// ComputeTotals derives total and overtime hours from clock-in/out times and
// the break. Elapsed time is clamped at zero, so a clock-out earlier than the
// clock-in never yields negative totals. Total hours are rounded to two
// decimal places; overtime is time beyond workingHoursPerDay.
func ComputeTotals(clockIn, clockOut string, breakMinutes, workingHoursPerDay int) (totalHours, overtimeHours float64, err error) {
	inMinutes, err := MinutesOfDay(clockIn)
	if err != nil {
		return 0, 0, fmt.Errorf("clock_in: %w", err)
	}
	outMinutes, err := MinutesOfDay(clockOut)
	if err != nil {
		return 0, 0, fmt.Errorf("clock_out: %w", err)
	}

	elapsed := outMinutes - inMinutes - breakMinutes
	if elapsed < 0 {
		elapsed = 0
	}

	totalHours = math.Round(float64(elapsed)/60*100) / 100
	overtimeHours = totalHours - float64(workingHoursPerDay)
	if overtimeHours < 0 {
		overtimeHours = 0
	}
	return totalHours, overtimeHours, nil
}
