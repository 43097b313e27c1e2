package entity

import "time"

type Discount struct {
	Base
	Code        string    `db:"code"`
	Description *string   `db:"description"`
	Percent     int       `db:"percent"`
	ValidFrom   time.Time `db:"valid_from"`
	ValidTo     time.Time `db:"valid_to"`
	IsActive    bool      `db:"is_active"`
}
