package entity

import "time"

type Election struct {
	ID           int64
	ElectionName string
	URLString    string
	Running      bool
	Ended        bool
	AdminID      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
