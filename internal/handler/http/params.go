package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}
