package publicholiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesRoundTrip(t *testing.T) {
	entries := Entries{
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-12-25", Name: "Christmas Day"},
	}

	value, err := entries.Value()
	require.NoError(t, err)

	var scanned Entries
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, entries, scanned)
}

func TestEntriesValueNil(t *testing.T) {
	var entries Entries
	value, err := entries.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestEntriesScanNil(t *testing.T) {
	var entries Entries
	require.NoError(t, entries.Scan(nil))
	assert.Empty(t, entries)
}

func TestEntriesScanInvalidType(t *testing.T) {
	var entries Entries
	assert.Error(t, entries.Scan(42))
}

func TestEntriesSort(t *testing.T) {
	entries := Entries{
		{Date: "2025-12-25", Name: "Christmas Day"},
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-05-05", Name: "Early May Bank Holiday"},
	}
	entries.Sort()

	assert.Equal(t, "2025-01-01", entries[0].Date)
	assert.Equal(t, "2025-05-05", entries[1].Date)
	assert.Equal(t, "2025-12-25", entries[2].Date)
}

func TestEntriesDateSet(t *testing.T) {
	entries := Entries{
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-01-01", Name: "Another Name Same Day"},
		{Date: "2025-12-25", Name: "Christmas Day"},
	}
	set := entries.DateSet()

	assert.Len(t, set, 2)
	_, ok := set["2025-01-01"]
	assert.True(t, ok)
	_, ok = set["2025-12-26"]
	assert.False(t, ok)
}
