package holiday

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"golang.org/x/sync/errgroup"
)

// Calendar is one month of leave spans plus the public holidays that the
// calendar view overlays on them.
type Calendar struct {
	Year           int                       `json:"year"`
	Month          int                       `json:"month"`
	Holidays       []holiday.HolidayResponse `json:"holidays"`
	PublicHolidays publicholiday.Entries     `json:"public_holidays"`
}

// Calendar fetches the month's leave requests and the public-holiday list
// with two concurrent reads.
func (s *HolidayServiceImpl) Calendar(ctx context.Context, year, month int) (Calendar, error) {
	filter := holiday.ListFilter{
		Year:  fmt.Sprintf("%04d", year),
		Month: fmt.Sprintf("%02d", month),
	}

	var (
		holidays []holiday.Holiday
		list     publicholiday.List
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holidays, err = s.List(gCtx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = s.PublicHolidayRepository.Get(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Calendar{}, err
	}

	cal := Calendar{
		Year:           year,
		Month:          month,
		Holidays:       make([]holiday.HolidayResponse, 0, len(holidays)),
		PublicHolidays: list.Entries,
	}
	if cal.PublicHolidays == nil {
		cal.PublicHolidays = publicholiday.Entries{}
	}
	for _, h := range holidays {
		cal.Holidays = append(cal.Holidays, holiday.ToResponse(h))
	}
	return cal, nil
}
