package nager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicHolidays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publicholidays/2025/GB", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2025-01-01","localName":"New Year's Day","name":"New Year's Day"},
			{"date":"2025-12-25","localName":"Christmas Day","name":"Christmas Day"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	holidays, err := client.PublicHolidays(context.Background(), 2025, "GB")
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2025-01-01", holidays[0].Date)
	assert.Equal(t, "Christmas Day", holidays[1].LocalName)
}

func TestPublicHolidaysAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown country", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.PublicHolidays(context.Background(), 2025, "XX")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestPublicHolidaysBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.PublicHolidays(context.Background(), 2025, "GB")
	assert.Error(t, err)
}
