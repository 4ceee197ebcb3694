package holiday

import "time"

type Type string

const (
	TypeRegular Type = "regular"
	TypeSpecial Type = "special"
)

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}
