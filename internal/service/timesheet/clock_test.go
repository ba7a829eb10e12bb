package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := MinutesOfDay(c.input)
		if c.ok {
			assert.NoError(t, err, c.input)
			assert.Equal(t, c.want, got, c.input)
		} else {
			assert.ErrorIs(t, err, timesheet.ErrInvalidTimeFormat, c.input)
		}
	}
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name         string
		clockIn      string
		clockOut     string
		breakMinutes int
		workingHours int
		wantTotal    float64
		wantOvertime float64
	}{
		{"standard day", "09:00", "17:30", 30, 8, 8, 0},
		{"one hour overtime", "09:00", "18:00", 0, 8, 9, 1},
		{"half day", "09:00", "13:00", 0, 8, 4, 0},
		{"zero gap", "09:00", "09:00", 0, 8, 0, 0},
		{"break exceeds shift", "09:00", "09:30", 60, 8, 0, 0},
		{"clock out before clock in", "17:00", "09:00", 0, 8, 0, 0},
		{"rounding", "09:00", "09:50", 0, 8, 0.83, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			total, overtime, err := ComputeTotals(c.clockIn, c.clockOut, c.breakMinutes, c.workingHours)
			assert.NoError(t, err)
			assert.InDelta(t, c.wantTotal, total, 0.001)
			assert.InDelta(t, c.wantOvertime, overtime, 0.001)
		})
	}
}

func TestComputeTotalsInvalidInput(t *testing.T) {
	_, _, err := ComputeTotals("9am", "17:00", 0, 8)
	assert.ErrorIs(t, err, timesheet.ErrInvalidTimeFormat)

	_, _, err = ComputeTotals("09:00", "5pm", 0, 8)
	assert.ErrorIs(t, err, timesheet.ErrInvalidTimeFormat)
}
