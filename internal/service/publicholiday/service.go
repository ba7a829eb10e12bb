package publicholiday

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/nager"
)

// HolidaySource fetches the official holidays for one country and year.
type HolidaySource interface {
	PublicHolidays(ctx context.Context, year int, countryCode string) ([]nager.PublicHoliday, error)
}

type PublicHolidayService interface {
	Get(ctx context.Context) (publicholiday.List, error)
	AddEntry(ctx context.Context, req publicholiday.AddEntryRequest) (publicholiday.List, error)
	DeleteEntries(ctx context.Context, date string) (publicholiday.List, error)
	Refresh(ctx context.Context, req publicholiday.RefreshRequest) (publicholiday.List, error)
}

type PublicHolidayServiceImpl struct {
	db *database.DB
	publicholiday.PublicHolidayRepository
	source  HolidaySource
	country string

	// now is swappable for tests.
	now func() time.Time
}

func NewPublicHolidayService(
	db *database.DB,
	repository publicholiday.PublicHolidayRepository,
	source HolidaySource,
	country string,
) *PublicHolidayServiceImpl {
	return &PublicHolidayServiceImpl{
		db:                      db,
		PublicHolidayRepository: repository,
		source:                  source,
		country:                 country,
		now:                     time.Now,
	}
}

// Get implements PublicHolidayService.
func (s *PublicHolidayServiceImpl) Get(ctx context.Context) (publicholiday.List, error) {
	return s.PublicHolidayRepository.Get(ctx)
}

// AddEntry implements PublicHolidayService: insert one entry and re-sort.
func (s *PublicHolidayServiceImpl) AddEntry(ctx context.Context, req publicholiday.AddEntryRequest) (publicholiday.List, error) {
	if err := req.Validate(); err != nil {
		return publicholiday.List{}, err
	}

	list, err := s.PublicHolidayRepository.Get(ctx)
	if err != nil {
		return publicholiday.List{}, err
	}
	if list.Country == "" {
		list.Country = s.country
	}

	list.Entries = append(list.Entries, publicholiday.Entry{Date: req.Date, Name: req.Name})
	list.Entries.Sort()

	return s.PublicHolidayRepository.Replace(ctx, list)
}

// DeleteEntries implements PublicHolidayService: remove every entry matching
// the date.
func (s *PublicHolidayServiceImpl) DeleteEntries(ctx context.Context, date string) (publicholiday.List, error) {
	list, err := s.PublicHolidayRepository.Get(ctx)
	if err != nil {
		return publicholiday.List{}, err
	}

	kept := make(publicholiday.Entries, 0, len(list.Entries))
	for _, entry := range list.Entries {
		if entry.Date != date {
			kept = append(kept, entry)
		}
	}
	list.Entries = kept

	return s.PublicHolidayRepository.Replace(ctx, list)
}

// Refresh implements PublicHolidayService. The whole refresh is
// all-or-nothing: the first year that fails aborts the operation and the
// stored list is left untouched.
func (s *PublicHolidayServiceImpl) Refresh(ctx context.Context, req publicholiday.RefreshRequest) (publicholiday.List, error) {
	if err := req.Validate(); err != nil {
		return publicholiday.List{}, err
	}

	years := req.Years
	if len(years) == 0 {
		current := s.now().Year()
		years = []int{current, current + 1}
	}

	list, err := s.PublicHolidayRepository.Get(ctx)
	if err != nil {
		return publicholiday.List{}, err
	}
	if list.Country == "" {
		list.Country = s.country
	}

	var entries publicholiday.Entries
	for _, year := range years {
		holidays, err := s.source.PublicHolidays(ctx, year, list.Country)
		if err != nil {
			return publicholiday.List{}, fmt.Errorf("%w: %v", publicholiday.ErrRefreshFailed, err)
		}
		for _, h := range holidays {
			entries = append(entries, publicholiday.Entry{Date: h.Date, Name: h.Name})
		}
	}
	entries.Sort()

	refreshedAt := s.now()
	list.Entries = entries
	list.RefreshedAt = &refreshedAt

	return s.PublicHolidayRepository.Replace(ctx, list)
}
