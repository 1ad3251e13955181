package tempworker

import "errors"

var ErrEntryNotFound = errors.New("temporary worker entry not found")
