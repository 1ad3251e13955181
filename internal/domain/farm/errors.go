package farm

import "errors"

var (
	ErrFarmNotFound   = errors.New("farm not found")
	ErrFarmNameExists = errors.New("farm name already exists")
)
