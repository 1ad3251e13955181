package farm

import "time"

type Farm struct {
	ID        string
	Name      string
	Location  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
