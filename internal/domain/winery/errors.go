package winery

import "errors"

var (
	ErrLotNotFound     = errors.New("wine lot not found")
	ErrReadingNotFound = errors.New("fermentation reading not found")
	ErrLotNotActive    = errors.New("wine lot is not fermenting or aging")
)
