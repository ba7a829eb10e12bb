package publicholiday

import "errors"

var ErrRefreshFailed = errors.New("public holiday refresh failed")
