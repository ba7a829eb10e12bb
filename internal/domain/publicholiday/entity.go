package publicholiday

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"time"
)

// Entry is one public holiday in the directory.
type Entry struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// Entries is the JSONB-backed holiday list, kept sorted by date.
type Entries []Entry

// Value implements driver.Valuer for database storage
func (e Entries) Value() (driver.Value, error) {
	if e == nil {
		e = Entries{}
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner for database retrieval
func (e *Entries) Scan(value interface{}) error {
	if value == nil {
		*e = Entries{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan public holiday entries: invalid type")
	}

	return json.Unmarshal(bytes, e)
}

// Sort orders the list by date ascending.
func (e Entries) Sort() {
	sort.Slice(e, func(i, j int) bool { return e[i].Date < e[j].Date })
}

// DateSet returns the entry dates as a set for working-day exclusion.
func (e Entries) DateSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e))
	for _, entry := range e {
		set[entry.Date] = struct{}{}
	}
	return set
}

// List is the singleton public-holiday directory.
type List struct {
	ID          int64
	Country     string
	Entries     Entries
	RefreshedAt *time.Time
	UpdatedAt   time.Time
}
