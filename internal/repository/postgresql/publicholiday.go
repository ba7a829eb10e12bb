package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type publicHolidayRepositoryImpl struct {
	db             *database.DB
	defaultCountry string
}

func NewPublicHolidayRepository(db *database.DB, defaultCountry string) publicholiday.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db, defaultCountry: defaultCountry}
}

// Get implements publicholiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Get(ctx context.Context) (publicholiday.List, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, country, entries, refreshed_at, updated_at
		FROM public_holidays
		ORDER BY id
		LIMIT 1
	`

	var l publicholiday.List
	err := q.QueryRow(ctx, query).Scan(&l.ID, &l.Country, &l.Entries, &l.RefreshedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return publicholiday.List{Country: r.defaultCountry, Entries: publicholiday.Entries{}}, nil
		}
		return publicholiday.List{}, fmt.Errorf("failed to get public holiday list: %w", err)
	}
	return l, nil
}

// Replace implements publicholiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Replace(ctx context.Context, l publicholiday.List) (publicholiday.List, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == 0 {
		query := `
			INSERT INTO public_holidays (country, entries, refreshed_at)
			VALUES ($1, $2, $3)
			RETURNING id, country, entries, refreshed_at, updated_at
		`
		var created publicholiday.List
		err := q.QueryRow(ctx, query, l.Country, l.Entries, l.RefreshedAt).Scan(
			&created.ID, &created.Country, &created.Entries, &created.RefreshedAt, &created.UpdatedAt,
		)
		if err != nil {
			return publicholiday.List{}, fmt.Errorf("failed to create public holiday list: %w", err)
		}
		return created, nil
	}

	query := `
		UPDATE public_holidays
		SET country = $1, entries = $2, refreshed_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, country, entries, refreshed_at, updated_at
	`
	var updated publicholiday.List
	err := q.QueryRow(ctx, query, l.Country, l.Entries, l.RefreshedAt, l.ID).Scan(
		&updated.ID, &updated.Country, &updated.Entries, &updated.RefreshedAt, &updated.UpdatedAt,
	)
	if err != nil {
		return publicholiday.List{}, fmt.Errorf("failed to update public holiday list: %w", err)
	}
	return updated, nil
}
